package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("ImportacaoService", func() {
	var (
		env       *testEnv
		catalog   *fakeCatalog
		m         *metrics.Metrics
		service   *services.ImportacaoService
		usuario   *entities.Usuario
		categoria *entities.Categoria
	)

	BeforeEach(func() {
		env = newTestEnv()
		catalog = newFakeCatalog(map[int64]string{
			1: "casa",
			2: "Casa azul",
			3: "cachorro",
			4: "gato",
			5: "comer",
			6: "comida",
		})
		m = metrics.New()
		service = services.NewImportacaoService(catalog, env.pictogramas, env.categorias, env.usuarios, env.uow, m, env.logger)
		usuario = env.criarUsuario("Ana")
		categoria = env.criarCategoria("Casa", nil, 1)
	})

	Describe("Importar", func() {
		It("cria um pictograma IMAGEM com a cor da categoria no fim da lista", func() {
			env.criarPictograma("porta", categoria.ID, nil)

			p, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.ID).NotTo(BeZero())
			Expect(p.Label).To(Equal("casa"))
			Expect(p.LabelAlternativo).To(Equal("casa alt"))
			Expect(p.Tipo).To(Equal(entities.TipoImagem))
			Expect(p.Cor).To(Equal("bg-green-400"))
			Expect(p.Ordem).To(Equal(2))
			Expect(p.ImagemURL).To(Equal("https://static.test/1/1_500.png"))
			Expect(p.Padrao).To(BeFalse())
			Expect(*p.UsuarioID).To(Equal(usuario.ID))
			Expect(testutil.ToFloat64(m.Imports.WithLabelValues("success"))).To(Equal(1.0))
		})

		It("usa a imagem colorida quando pedido", func() {
			p, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 3, CategoriaID: categoria.ID, Colorido: true}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ImagemURL).To(HaveSuffix("?color"))
		})

		It("usa a cor padrão quando a categoria não tem cor", func() {
			semCor := &entities.Categoria{Nome: "Sem cor", Ativa: true, Ordem: 1, UsuarioID: &usuario.ID}
			Expect(env.categorias.Create(env.ctx, semCor)).To(Succeed())

			p, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 4, CategoriaID: semCor.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Cor).To(Equal(entities.CorPadraoPictograma))
		})

		It("recusa importar o mesmo label duas vezes na mesma categoria", func() {
			input := services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID}
			_, err := service.Importar(env.ctx, input, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Importar(env.ctx, input, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrPictogramaJaImportado)).To(BeTrue())
			Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindBusinessRule))
			Expect(testutil.ToFloat64(m.Imports.WithLabelValues("rejected"))).To(Equal(1.0))
		})

		It("permite o mesmo label para outro usuário", func() {
			outro := env.criarUsuario("Bia")
			input := services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID}

			_, err := service.Importar(env.ctx, input, usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Importar(env.ctx, input, outro.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("falha com NOT_FOUND",
			func(input func() services.ImportarInput, usuarioID func() int64, expected error) {
				_, err := service.Importar(env.ctx, input(), usuarioID())
				Expect(errors.Is(err, expected)).To(BeTrue())
				Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindNotFound))
			},
			Entry("pictograma externo inexistente",
				func() services.ImportarInput {
					return services.ImportarInput{IDExterno: 999, CategoriaID: categoria.ID}
				},
				func() int64 { return usuario.ID },
				domainerrors.ErrPictogramaExternoNotFound),
			Entry("categoria inexistente",
				func() services.ImportarInput { return services.ImportarInput{IDExterno: 1, CategoriaID: 999} },
				func() int64 { return usuario.ID },
				domainerrors.ErrCategoriaNotFound),
			Entry("usuário inexistente",
				func() services.ImportarInput { return services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID} },
				func() int64 { return 999 },
				domainerrors.ErrUsuarioNotFound),
		)

		It("recusa categoria pessoal de outro usuário", func() {
			outro := env.criarUsuario("Bia")
			alheia := env.criarCategoria("Da Bia", &outro.ID, 1)

			_, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 1, CategoriaID: alheia.ID}, usuario.ID)
			Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())
		})
	})

	Describe("ImportarLote", func() {
		It("importa N-K itens quando K são inválidos, sem falhar", func() {
			inputs := []services.ImportarInput{
				{IDExterno: 1, CategoriaID: categoria.ID},
				{IDExterno: 999, CategoriaID: categoria.ID},
				{IDExterno: 3, CategoriaID: categoria.ID},
				{IDExterno: 1, CategoriaID: categoria.ID},
				{IDExterno: 4, CategoriaID: 12345},
			}

			importados := service.ImportarLote(env.ctx, inputs, usuario.ID)

			Expect(importados).To(HaveLen(2))
			Expect(importados[0].Label).To(Equal("casa"))
			Expect(importados[1].Label).To(Equal("cachorro"))
			Expect(importados[1].Ordem).To(Equal(2))
		})

		It("retorna lista vazia para lote vazio", func() {
			Expect(service.ImportarLote(env.ctx, nil, usuario.ID)).To(BeEmpty())
		})
	})

	Describe("Sugerir", func() {
		It("retorna vazio para texto vazio ou só com palavras curtas", func() {
			for _, texto := range []string{"", "   ", "eu de um", "a é"} {
				sugestoes, err := service.Sugerir(env.ctx, texto, 10, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(sugestoes).To(BeEmpty())
			}
			Expect(catalog.buscas).To(BeEmpty())
		})

		It("divide o limite entre as palavras e nunca passa do limite", func() {
			sugestoes, err := service.Sugerir(env.ctx, "Quero CASA comer", 4, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(len(sugestoes)).To(BeNumerically("<=", 4))
			Expect(catalog.buscas).To(Equal([]string{"quero:1", "casa:1", "comer:1"}))
			Expect(sugestoes).To(HaveLen(2))
		})

		It("remove palavras e pictogramas repetidos", func() {
			sugestoes, err := service.Sugerir(env.ctx, "casa casa azul", 10, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(catalog.buscas).To(Equal([]string{"casa:5", "azul:5"}))
			ids := make([]int64, 0, len(sugestoes))
			for _, s := range sugestoes {
				ids = append(ids, s.IDExterno)
			}
			Expect(ids).To(Equal([]int64{1, 2}))
		})

		It("trunca no limite", func() {
			sugestoes, err := service.Sugerir(env.ctx, "com", 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(sugestoes).To(HaveLen(1))
		})

		It("conta letras acentuadas como um caractere", func() {
			_, err := service.Sugerir(env.ctx, "pé pão", 5, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(catalog.buscas).To(Equal([]string{"pão:5"}))
		})
	})

	Describe("MarcarImportados", func() {
		It("marca só os externos com label igual a um pictograma ativo do usuário", func() {
			meu := env.criarPictograma("CASA", categoria.ID, &usuario.ID)
			inativo := env.criarPictograma("gato", categoria.ID, &usuario.ID)
			inativo.Desativar()
			Expect(env.pictogramas.Update(env.ctx, inativo)).To(Succeed())
			outro := env.criarUsuario("Bia")
			env.criarPictograma("cachorro", categoria.ID, &outro.ID)
			env.criarPictograma("Casa azul", categoria.ID, nil)

			externos := []*entities.PictogramaExterno{
				{IDExterno: 1, Label: "casa", Importado: true},
				{IDExterno: 2, Label: "Casa azul"},
				{IDExterno: 3, Label: "cachorro"},
				{IDExterno: 4, Label: "gato"},
			}

			marcados, err := service.MarcarImportados(env.ctx, externos, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(marcados[0].Importado).To(BeTrue())
			Expect(*marcados[0].PictogramaVoxID).To(Equal(meu.ID))
			for _, e := range marcados[1:] {
				Expect(e.Importado).To(BeFalse(), e.Label)
				Expect(e.PictogramaVoxID).To(BeNil())
			}
		})

		It("falha com NOT_FOUND para usuário inexistente", func() {
			_, err := service.MarcarImportados(env.ctx, nil, 999)
			Expect(errors.Is(err, domainerrors.ErrUsuarioNotFound)).To(BeTrue())
		})
	})

	Describe("buscas no catálogo", func() {
		It("marca os resultados da busca quando há usuário", func() {
			_, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			resultados, err := service.Buscar(env.ctx, "casa", 20, &usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resultados).To(HaveLen(2))
			Expect(resultados[0].Importado).To(BeTrue())
			Expect(resultados[1].Importado).To(BeFalse())
		})

		It("não marca BuscarPorID sem usuário", func() {
			_, err := service.Importar(env.ctx, services.ImportarInput{IDExterno: 1, CategoriaID: categoria.ID}, usuario.ID)
			Expect(err).NotTo(HaveOccurred())

			externo, err := service.BuscarPorID(env.ctx, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(externo.Importado).To(BeFalse())

			externo, err = service.BuscarPorID(env.ctx, 1, &usuario.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(externo.Importado).To(BeTrue())
		})

		It("BuscarPorID falha com NOT_FOUND para id desconhecido", func() {
			_, err := service.BuscarPorID(env.ctx, 404, nil)
			Expect(errors.Is(err, domainerrors.ErrPictogramaExternoNotFound)).To(BeTrue())
		})

		It("repassa o status do catálogo", func() {
			Expect(service.Status(env.ctx)).To(BeTrue())
			catalog.available = false
			Expect(service.Status(env.ctx)).To(BeFalse())
		})
	})
})
