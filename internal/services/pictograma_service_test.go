package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("PictogramaService", func() {
	var (
		env       *testEnv
		service   *services.PictogramaService
		usuario   *entities.Usuario
		outro     *entities.Usuario
		categoria *entities.Categoria
	)

	BeforeEach(func() {
		env = newTestEnv()
		service = services.NewPictogramaService(env.pictogramas, env.categorias, env.usuarios, env.uow, env.logger)
		usuario = env.criarUsuario("Ana")
		outro = env.criarUsuario("Bia")
		categoria = env.criarCategoria("Básico", nil, 1)
	})

	Describe("Criar", func() {
		It("aplica os padrões de tipo, cor e ordem", func() {
			env.criarPictograma("sim", categoria.ID, nil)

			p, err := service.Criar(env.ctx, services.PictogramaInput{Label: "água", CategoriaID: categoria.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Tipo).To(Equal(entities.TipoPadrao))
			Expect(p.Cor).To(Equal("bg-green-400"))
			Expect(p.Ordem).To(Equal(2))
			Expect(p.Ativo).To(BeTrue())
			Expect(p.VezesUsado).To(BeZero())
		})

		It("recusa label repetido na mesma categoria", func() {
			input := services.PictogramaInput{Label: "água", CategoriaID: categoria.ID, Tipo: entities.TipoEmoji}
			_, err := service.Criar(env.ctx, input, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Criar(env.ctx, input, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrPictogramaDuplicado)).To(BeTrue())
		})

		It("falha com NOT_FOUND para categoria inexistente", func() {
			_, err := service.Criar(env.ctx, services.PictogramaInput{Label: "água", CategoriaID: 999}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrCategoriaNotFound)).To(BeTrue())
		})
	})

	Describe("Atualizar", func() {
		It("não muda a categoria", func() {
			outra := env.criarCategoria("Minha", &usuario.ID, 1)
			p := env.criarPictograma("água", categoria.ID, &usuario.ID)

			updated, err := service.Atualizar(env.ctx, p.ID, services.PictogramaInput{Label: "suco", CategoriaID: outra.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Label).To(Equal("suco"))
			Expect(updated.CategoriaID).To(Equal(categoria.ID))
		})

		It("não permite alterar pictogramas padrão nem alheios", func() {
			padrao := env.criarPictograma("sim", categoria.ID, nil)
			alheio := env.criarPictograma("não", categoria.ID, &outro.ID)

			_, err := service.Atualizar(env.ctx, padrao.ID, services.PictogramaInput{Label: "x"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrPadraoNaoEditavel)).To(BeTrue())

			_, err = service.Atualizar(env.ctx, alheio.ID, services.PictogramaInput{Label: "x"}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
		})
	})

	Describe("RegistrarUso e MaisUsados", func() {
		It("incrementa o contador e ordena por uso", func() {
			a := env.criarPictograma("a", categoria.ID, &usuario.ID)
			b := env.criarPictograma("b", categoria.ID, &usuario.ID)

			for range 3 {
				_, err := service.RegistrarUso(env.ctx, b.ID)
				Expect(err).NotTo(HaveOccurred())
			}
			p, err := service.RegistrarUso(env.ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.VezesUsado).To(Equal(int64(1)))

			mais, err := service.MaisUsados(env.ctx, usuario.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(mais).To(HaveLen(2))
			Expect(mais[0].ID).To(Equal(b.ID))
			Expect(mais[0].VezesUsado).To(Equal(int64(3)))

			mais, err = service.MaisUsados(env.ctx, usuario.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(mais).To(HaveLen(1))
		})

		It("falha com NOT_FOUND para id inexistente", func() {
			_, err := service.RegistrarUso(env.ctx, 999)
			Expect(errors.Is(err, domainerrors.ErrPictogramaNotFound)).To(BeTrue())
		})
	})

	Describe("Buscar", func() {
		It("procura em label e label alternativo sem diferenciar maiúsculas", func() {
			env.criarPictograma("Banheiro", categoria.ID, nil)
			meu := &entities.Pictograma{
				Label: "xixi", LabelAlternativo: "ir ao banheiro", Cor: "c", Tipo: entities.TipoPadrao,
				Ativo: true, Ordem: 1, CategoriaID: categoria.ID, UsuarioID: &usuario.ID,
			}
			Expect(env.pictogramas.Create(env.ctx, meu)).To(Succeed())
			env.criarPictograma("banheiro da bia", categoria.ID, &outro.ID)

			encontrados, err := service.Buscar(env.ctx, "BANHEIRO", usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(encontrados).To(HaveLen(2))
		})

		It("trata curingas do LIKE como texto", func() {
			env.criarPictograma("Banheiro", categoria.ID, nil)

			encontrados, err := service.Buscar(env.ctx, "%", usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(encontrados).To(BeEmpty())
		})

		It("retorna vazio para termo em branco", func() {
			env.criarPictograma("Banheiro", categoria.ID, nil)

			encontrados, err := service.Buscar(env.ctx, "  ", usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(encontrados).To(BeEmpty())
		})
	})

	Describe("Desativar", func() {
		It("remove das listagens mas BuscarPorID ainda encontra", func() {
			p := env.criarPictograma("água", categoria.ID, &usuario.ID)
			Expect(service.Desativar(env.ctx, p.ID, usuario.ID)).To(Succeed())

			lista, err := service.ListarPorCategoria(env.ctx, categoria.ID, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(lista).To(BeEmpty())

			found, err := service.BuscarPorID(env.ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Ativo).To(BeFalse())
		})
	})
})
