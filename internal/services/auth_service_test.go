package services_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	domainerrors "github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/infrastructure/token"
	"github.com/projetovox/vox-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		env     *testEnv
		service *services.AuthService
	)

	BeforeEach(func() {
		env = newTestEnv()
		tokens, err := token.NewService("0123456789abcdef0123456789abcdef", time.Hour)
		Expect(err).NotTo(HaveOccurred())
		service = services.NewAuthService(env.usuarios, tokens, env.uow, env.logger, services.WithHashCost(bcrypt.MinCost))
	})

	register := func(email string) *entities.Usuario {
		u, err := service.Register(env.ctx, services.RegisterInput{
			Nome:     "Ana",
			Telefone: "11999990000",
			Email:    email,
			Password: "segredo123",
		})
		Expect(err).NotTo(HaveOccurred())
		return u
	}

	It("registra com role USER e senha com hash", func() {
		u := register("Ana@Vox.test")
		Expect(u.ID).NotTo(BeZero())
		Expect(u.Role).To(Equal(entities.RoleUser))
		Expect(u.Email.String()).To(Equal("ana@vox.test"))
		Expect(u.PasswordHash).NotTo(Equal("segredo123"))
	})

	It("recusa email já usado", func() {
		register("ana@vox.test")
		_, err := service.Register(env.ctx, services.RegisterInput{Nome: "Outra", Email: "ANA@vox.test", Password: "x12345"})
		Expect(errors.Is(err, domainerrors.ErrEmailAlreadyExists)).To(BeTrue())
	})

	It("recusa email inválido", func() {
		_, err := service.Register(env.ctx, services.RegisterInput{Nome: "Ana", Email: "ana", Password: "x12345"})
		Expect(errors.Is(err, domainerrors.ErrInvalidEmail)).To(BeTrue())
	})

	It("faz login e resolve o usuário pelo token", func() {
		u := register("ana@vox.test")

		tok, err := service.Login(env.ctx, "ana@vox.test", "segredo123")
		Expect(err).NotTo(HaveOccurred())
		Expect(tok).NotTo(BeEmpty())

		principal, err := service.Authenticate(env.ctx, tok)
		Expect(err).NotTo(HaveOccurred())
		Expect(principal.ID).To(Equal(u.ID))
	})

	It("distingue email desconhecido de senha errada", func() {
		register("ana@vox.test")

		_, err := service.Login(env.ctx, "bia@vox.test", "segredo123")
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindNotFound))

		_, err = service.Login(env.ctx, "ana@vox.test", "errada")
		Expect(errors.Is(err, domainerrors.ErrInvalidCredentials)).To(BeTrue())
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindUnauthorized))
	})

	It("recusa token inválido", func() {
		_, err := service.Authenticate(env.ctx, "nao.e.jwt")
		Expect(domainerrors.KindOf(err)).To(Equal(domainerrors.KindUnauthorized))
	})
})
