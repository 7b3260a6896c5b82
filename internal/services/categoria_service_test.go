package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("CategoriaService", func() {
	var (
		env     *testEnv
		service *services.CategoriaService
		usuario *entities.Usuario
		outro   *entities.Usuario
	)

	BeforeEach(func() {
		env = newTestEnv()
		service = services.NewCategoriaService(env.categorias, env.pictogramas, env.usuarios, env.uow, env.logger)
		usuario = env.criarUsuario("Ana")
		outro = env.criarUsuario("Bia")
	})

	Describe("Criar", func() {
		It("cria uma categoria pessoal ativa no fim da lista", func() {
			env.criarCategoria("Primeira", &usuario.ID, 1)

			c, err := service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola", Cor: "bg-red-400"}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.ID).NotTo(BeZero())
			Expect(c.Ativa).To(BeTrue())
			Expect(c.Padrao).To(BeFalse())
			Expect(c.Ordem).To(Equal(2))
			Expect(*c.UsuarioID).To(Equal(usuario.ID))
		})

		It("respeita a ordem informada", func() {
			c, err := service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola", Ordem: 7}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Ordem).To(Equal(7))
		})

		It("recusa nome repetido para o mesmo usuário", func() {
			_, err := service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola"}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrCategoriaDuplicada)).To(BeTrue())

			_, err = service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola"}, outro.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("falha com NOT_FOUND para usuário inexistente", func() {
			_, err := service.Criar(env.ctx, services.CategoriaInput{Nome: "Escola"}, 999)
			Expect(errors.Is(err, domainerrors.ErrUsuarioNotFound)).To(BeTrue())
		})
	})

	Describe("ListarDisponiveis", func() {
		It("retorna padrão e próprias, ativas, por ordem", func() {
			padrao := env.criarCategoria("Básico", nil, 2)
			minha := env.criarCategoria("Minha", &usuario.ID, 1)
			env.criarCategoria("Da Bia", &outro.ID, 0)
			inativa := env.criarCategoria("Inativa", &usuario.ID, 3)
			Expect(service.Desativar(env.ctx, inativa.ID, usuario.ID)).To(Succeed())

			categorias, err := service.ListarDisponiveis(env.ctx, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(categorias).To(HaveLen(2))
			Expect(categorias[0].ID).To(Equal(minha.ID))
			Expect(categorias[1].ID).To(Equal(padrao.ID))
		})
	})

	Describe("BuscarComPictogramas", func() {
		It("inclui só pictogramas ativos padrão e do usuário", func() {
			c := env.criarCategoria("Básico", nil, 1)
			p1 := env.criarPictograma("sim", c.ID, nil)
			p2 := env.criarPictograma("meu", c.ID, &usuario.ID)
			env.criarPictograma("da bia", c.ID, &outro.ID)
			inativo := env.criarPictograma("velho", c.ID, &usuario.ID)
			inativo.Desativar()
			Expect(env.pictogramas.Update(env.ctx, inativo)).To(Succeed())

			found, err := service.BuscarComPictogramas(env.ctx, c.ID, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			var ids []int64
			for _, p := range found.Pictogramas {
				ids = append(ids, p.ID)
			}
			Expect(ids).To(ConsistOf(p1.ID, p2.ID))
		})

		It("nega acesso à categoria pessoal de outro usuário", func() {
			c := env.criarCategoria("Da Bia", &outro.ID, 1)
			_, err := service.BuscarComPictogramas(env.ctx, c.ID, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
		})

		It("falha com NOT_FOUND para id inexistente", func() {
			_, err := service.BuscarComPictogramas(env.ctx, 999, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrCategoriaNotFound)).To(BeTrue())
		})
	})

	Describe("Atualizar e Desativar", func() {
		It("não permite alterar categorias padrão", func() {
			padrao := env.criarCategoria("Básico", nil, 1)

			_, err := service.Atualizar(env.ctx, padrao.ID, services.CategoriaInput{Nome: "Outro"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrPadraoNaoEditavel)).To(BeTrue())

			err = service.Desativar(env.ctx, padrao.ID, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrPadraoNaoEditavel)).To(BeTrue())
		})

		It("não permite alterar categorias de outro usuário", func() {
			alheia := env.criarCategoria("Da Bia", &outro.ID, 1)

			_, err := service.Atualizar(env.ctx, alheia.ID, services.CategoriaInput{Nome: "Minha"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
			Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindBusinessRule))
		})

		It("atualiza os campos e mantém a ordem quando não informada", func() {
			c := env.criarCategoria("Escola", &usuario.ID, 4)

			updated, err := service.Atualizar(env.ctx, c.ID, services.CategoriaInput{Nome: "Colégio", Cor: "bg-pink-400"}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Nome).To(Equal("Colégio"))
			Expect(updated.Cor).To(Equal("bg-pink-400"))
			Expect(updated.Ordem).To(Equal(4))
		})

		It("recusa renomear para um nome já usado", func() {
			env.criarCategoria("Casa", &usuario.ID, 1)
			c := env.criarCategoria("Escola", &usuario.ID, 2)

			_, err := service.Atualizar(env.ctx, c.ID, services.CategoriaInput{Nome: "Casa"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrCategoriaDuplicada)).To(BeTrue())
		})

		It("desativar remove das listagens mas a busca por id ainda encontra", func() {
			c := env.criarCategoria("Escola", &usuario.ID, 1)
			Expect(service.Desativar(env.ctx, c.ID, usuario.ID)).To(Succeed())

			categorias, err := service.ListarDisponiveis(env.ctx, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(categorias).To(BeEmpty())

			found, err := env.categorias.FindByID(env.ctx, c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.Ativa).To(BeFalse())
		})
	})

	Describe("Reordenar", func() {
		It("grava a posição de cada id começando em 1 e ignora ids alheios", func() {
			c1 := env.criarCategoria("Um", &usuario.ID, 1)
			c2 := env.criarCategoria("Dois", &usuario.ID, 2)
			c3 := env.criarCategoria("Três", &usuario.ID, 3)
			alheia := env.criarCategoria("Da Bia", &outro.ID, 9)
			padrao := env.criarCategoria("Básico", nil, 5)

			err := service.Reordenar(env.ctx, []int64{c3.ID, alheia.ID, c1.ID, padrao.ID, 999, c2.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			ordem := func(id int64) int {
				c, err := env.categorias.FindByID(env.ctx, id)
				Expect(err).NotTo(HaveOccurred())
				return c.Ordem
			}
			Expect(ordem(c3.ID)).To(Equal(1))
			Expect(ordem(c1.ID)).To(Equal(3))
			Expect(ordem(c2.ID)).To(Equal(6))
			Expect(ordem(alheia.ID)).To(Equal(9))
			Expect(ordem(padrao.ID)).To(Equal(5))
		})

		It("segue a lista [3,1,2]", func() {
			c1 := env.criarCategoria("Um", &usuario.ID, 1)
			c2 := env.criarCategoria("Dois", &usuario.ID, 2)
			c3 := env.criarCategoria("Três", &usuario.ID, 3)

			Expect(service.Reordenar(env.ctx, []int64{c3.ID, c1.ID, c2.ID}, usuario.ID)).To(Succeed())

			categorias, err := service.ListarDisponiveis(env.ctx, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(categorias[0].ID).To(Equal(c3.ID))
			Expect(categorias[0].Ordem).To(Equal(1))
			Expect(categorias[1].ID).To(Equal(c1.ID))
			Expect(categorias[1].Ordem).To(Equal(2))
			Expect(categorias[2].ID).To(Equal(c2.ID))
			Expect(categorias[2].Ordem).To(Equal(3))
		})
	})
})
