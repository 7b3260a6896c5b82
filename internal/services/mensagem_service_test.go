package services_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("MensagemService", func() {
	var (
		env     *testEnv
		service *services.MensagemService
		usuario *entities.Usuario
		outro   *entities.Usuario
	)

	salvar := func(texto string, usuarioID int64) *entities.Mensagem {
		m, err := service.Salvar(env.ctx, services.MensagemInput{
			ConteudoJSON:      `[{"label":"` + texto + `"}]`,
			TextoCompleto:     texto,
			DispositivoOrigem: "tablet",
		}, usuarioID)
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	BeforeEach(func() {
		env = newTestEnv()
		service = services.NewMensagemService(env.mensagens, env.usuarios, env.uow, env.logger)
		usuario = env.criarUsuario("Ana")
		outro = env.criarUsuario("Bia")
	})

	It("salva com contadores zerados", func() {
		m := salvar("oi", usuario.ID)
		Expect(m.ID).NotTo(BeZero())
		Expect(m.Favorita).To(BeFalse())
		Expect(m.VezesReutilizada).To(BeZero())
		Expect(m.CriadoEm).NotTo(BeZero())
	})

	It("pagina o histórico com a mais recente primeiro", func() {
		var ultima *entities.Mensagem
		for _, texto := range []string{"a", "b", "c", "d", "e"} {
			ultima = salvar(texto, usuario.ID)
		}
		salvar("da bia", outro.ID)

		pagina, err := service.Listar(env.ctx, usuario.ID, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(pagina.Itens).To(HaveLen(2))
		Expect(pagina.Itens[0].ID).To(Equal(ultima.ID))
		Expect(pagina.Total).To(Equal(int64(5)))
		Expect(pagina.TotalPaginas()).To(Equal(3))

		pagina, err = service.Listar(env.ctx, usuario.ID, 3, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(pagina.Itens).To(HaveLen(1))
	})

	It("normaliza página e tamanho inválidos", func() {
		salvar("a", usuario.ID)

		pagina, err := service.Listar(env.ctx, usuario.ID, 0, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(pagina.Pagina).To(Equal(1))
		Expect(pagina.Tamanho).To(Equal(services.MaxTamanhoPagina))
	})

	It("alterna favorita e conta reutilizações só para o dono", func() {
		m := salvar("oi", usuario.ID)

		m, err := service.AlternarFavorita(env.ctx, m.ID, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Favorita).To(BeTrue())

		favoritas, err := service.Favoritas(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(favoritas).To(HaveLen(1))

		m, err = service.Reutilizar(env.ctx, m.ID, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.VezesReutilizada).To(Equal(int64(1)))

		_, err = service.Reutilizar(env.ctx, m.ID, outro.ID)
		Expect(errors.Is(err, domainerrors.ErrAcessoNegado)).To(BeTrue())

		_, err = service.AlternarFavorita(env.ctx, 999, usuario.ID)
		Expect(errors.Is(err, domainerrors.ErrMensagemNotFound)).To(BeTrue())
	})

	It("filtra por período e calcula estatísticas", func() {
		salvar("a", usuario.ID)
		salvar("b", usuario.ID)
		agora := time.Now().UTC()

		lista, err := service.PorPeriodo(env.ctx, usuario.ID, agora.Add(-time.Hour), agora.Add(time.Hour))
		Expect(err).NotTo(HaveOccurred())
		Expect(lista).To(HaveLen(2))

		stats, err := service.Estatisticas(env.ctx, usuario.ID, agora.Add(time.Hour), agora.Add(2*time.Hour))
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.TotalMensagens).To(Equal(int64(2)))
		Expect(stats.MensagensNoPeriodo).To(BeZero())
	})

	It("recusa período invertido", func() {
		agora := time.Now()
		_, err := service.PorPeriodo(env.ctx, usuario.ID, agora, agora.Add(-time.Minute))
		Expect(errors.Is(err, domainerrors.ErrPeriodoInvalido)).To(BeTrue())
	})
})
