package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/services"
)

const conteudoFrase = `[{"id":1,"label":"eu"},{"id":2,"label":"quero"},{"id":3,"label":"água"}]`

var _ = Describe("FraseFavoritaService", func() {
	var (
		env     *testEnv
		service *services.FraseFavoritaService
		usuario *entities.Usuario
		outro   *entities.Usuario
	)

	criar := func(titulo string, usuarioID int64) *entities.FraseFavorita {
		f, err := service.Criar(env.ctx, services.FraseInput{
			Titulo:        titulo,
			ConteudoJSON:  conteudoFrase,
			TextoCompleto: "eu quero água",
		}, usuarioID)
		Expect(err).NotTo(HaveOccurred())
		return f
	}

	BeforeEach(func() {
		env = newTestEnv()
		service = services.NewFraseFavoritaService(env.frases, env.usuarios, env.uow, env.logger)
		usuario = env.criarUsuario("Ana")
		outro = env.criarUsuario("Bia")
	})

	It("cria e lista frases ativas", func() {
		f := criar("Sede", usuario.ID)
		Expect(f.Ativa).To(BeTrue())
		Expect(f.ConteudoJSON).To(MatchJSON(conteudoFrase))

		frases, err := service.Listar(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(frases).To(HaveLen(1))
		Expect(frases[0].ConteudoJSON).To(MatchJSON(conteudoFrase))
	})

	It("recusa conteúdo que não é JSON", func() {
		_, err := service.Criar(env.ctx, services.FraseInput{Titulo: "x", ConteudoJSON: "eu quero"}, usuario.ID)
		Expect(errors.Is(err, domainerrors.ErrConteudoJSONInvalid)).To(BeTrue())
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindValidation))
	})

	It("recusa título repetido ao criar e ao renomear", func() {
		criar("Sede", usuario.ID)
		outra := criar("Fome", usuario.ID)

		_, err := service.Criar(env.ctx, services.FraseInput{Titulo: "Sede", ConteudoJSON: "[]"}, usuario.ID)
		Expect(errors.Is(err, domainerrors.ErrFraseDuplicada)).To(BeTrue())

		_, err = service.Atualizar(env.ctx, outra.ID, services.FraseInput{Titulo: "Sede", ConteudoJSON: "[]"}, usuario.ID)
		Expect(errors.Is(err, domainerrors.ErrFraseDuplicada)).To(BeTrue())

		_, err = service.Atualizar(env.ctx, outra.ID, services.FraseInput{Titulo: "Fome", ConteudoJSON: "[]", TextoCompleto: "fome"}, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
	})

	It("só o dono usa, altera ou desativa", func() {
		f := criar("Sede", usuario.ID)

		_, err := service.RegistrarUso(env.ctx, f.ID, outro.ID)
		Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
		err = service.Desativar(env.ctx, f.ID, outro.ID)
		Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
	})

	It("ordena as mais usadas por uso", func() {
		a := criar("A", usuario.ID)
		b := criar("B", usuario.ID)
		for range 2 {
			_, err := service.RegistrarUso(env.ctx, b.ID, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
		}

		mais, err := service.MaisUsadas(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(mais[0].ID).To(Equal(b.ID))
		Expect(mais[0].VezesUsada).To(Equal(int64(2)))
		Expect(mais[1].ID).To(Equal(a.ID))
	})

	It("desativar tira a frase da lista", func() {
		f := criar("Sede", usuario.ID)
		Expect(service.Desativar(env.ctx, f.ID, usuario.ID)).To(Succeed())

		frases, err := service.Listar(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(frases).To(BeEmpty())
	})

	It("reordena com base 1 ignorando frases alheias", func() {
		f1 := criar("Um", usuario.ID)
		f2 := criar("Dois", usuario.ID)
		f3 := criar("Três", usuario.ID)
		alheia := criar("Da Bia", outro.ID)

		Expect(service.Reordenar(env.ctx, []int64{f3.ID, alheia.ID, f1.ID, f2.ID}, usuario.ID)).To(Succeed())

		frases, err := service.Listar(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(frases[0].ID).To(Equal(f3.ID))
		Expect(frases[0].Ordem).To(Equal(1))
		Expect(frases[1].ID).To(Equal(f1.ID))
		Expect(frases[1].Ordem).To(Equal(3))
		Expect(frases[2].ID).To(Equal(f2.ID))
		Expect(frases[2].Ordem).To(Equal(4))

		found, err := env.frases.FindByID(env.ctx, alheia.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Ordem).To(BeZero())
	})
})
