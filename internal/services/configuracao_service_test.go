package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("ConfiguracaoService", func() {
	var (
		env     *testEnv
		service *services.ConfiguracaoService
		usuario *entities.Usuario
	)

	BeforeEach(func() {
		env = newTestEnv()
		service = services.NewConfiguracaoService(env.configuracoes, env.usuarios, env.uow, env.logger)
		usuario = env.criarUsuario("Ana")
	})

	It("cria a configuração padrão no primeiro acesso só uma vez", func() {
		c, err := service.Obter(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.ID).NotTo(BeZero())
		Expect(c.TamanhoPictograma).To(Equal(entities.TamanhoMedio))
		Expect(c.HabilitarSom).To(BeTrue())
		Expect(c.VelocidadeVoz).To(Equal(1.0))
		Expect(c.TempoVarredura).To(Equal(3))

		again, err := service.Obter(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.ID).To(Equal(c.ID))
	})

	It("falha com NOT_FOUND para usuário inexistente", func() {
		_, err := service.Obter(env.ctx, 999)
		Expect(errors.Is(err, domainerrors.ErrUsuarioNotFound)).To(BeTrue())
	})

	It("atualiza só os campos informados", func() {
		c, err := service.Atualizar(env.ctx, services.ConfiguracaoInput{
			TamanhoPictograma: ptr(entities.TamanhoGrande),
			ModoEscuro:        ptr(true),
			HabilitarSom:      ptr(false),
		}, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.TamanhoPictograma).To(Equal(entities.TamanhoGrande))
		Expect(c.ModoEscuro).To(BeTrue())
		Expect(c.HabilitarSom).To(BeFalse())
		Expect(c.IdiomaVoz).To(Equal("pt-BR"))

		stored, err := service.Obter(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.HabilitarSom).To(BeFalse())
		Expect(stored.ModoEscuro).To(BeTrue())
	})

	It("recusa valores fora dos limites sem gravar nada", func() {
		_, err := service.Atualizar(env.ctx, services.ConfiguracaoInput{
			VelocidadeVoz:  ptr(3.5),
			TempoVarredura: ptr(0),
			ModoEscuro:     ptr(true),
		}, usuario.ID)
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindValidation))

		var de *domainerrors.DomainError
		Expect(errors.As(err, &de)).To(BeTrue())
		Expect(de.FieldKeys).To(HaveKey("velocidadeVoz"))
		Expect(de.FieldKeys).To(HaveKey("tempoVarredura"))

		stored, err := service.Obter(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.ModoEscuro).To(BeFalse())
		Expect(stored.VelocidadeVoz).To(Equal(1.0))
	})

	It("reseta para os padrões", func() {
		_, err := service.Atualizar(env.ctx, services.ConfiguracaoInput{
			ModoVarredura:  ptr(true),
			TempoVarredura: ptr(8),
		}, usuario.ID)
		Expect(err).NotTo(HaveOccurred())

		c, err := service.Resetar(env.ctx, usuario.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.ModoVarredura).To(BeFalse())
		Expect(c.TempoVarredura).To(Equal(3))
	})
})
