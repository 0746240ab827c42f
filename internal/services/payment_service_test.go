package services_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
	"github.com/rafabene/dealflow-backend/internal/services"
)

var _ = Describe("PaymentService", func() {
	var (
		ctx     context.Context
		env     *serviceEnv
		deal    *entities.Deal
		payment *entities.Payment
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = newServiceEnv()
		deal = env.createDeal(alice, "Acme")

		var err error
		payment, err = env.payments.CreatePayment(ctx, services.CreatePaymentInput{
			DealID: deal.ID,
			Amount: money("1234.5"),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("preserva o valor exato com duas casas", func() {
		found, err := env.payments.GetPayment(ctx, payment.ID, alice)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Amount.String()).To(Equal("1234.50"))
		Expect(found.Paid).To(BeFalse())
	})

	Describe("CreatePayment", func() {
		It("exige amount", func() {
			_, err := env.payments.CreatePayment(ctx, services.CreatePaymentInput{DealID: deal.ID})
			var domainErr *errors.DomainError
			Expect(stderrors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Field).To(Equal("amount"))
			Expect(domainErr.Message).To(Equal("validation.required"))

			payments, err := env.payments.ListPaymentsForDeal(ctx, deal.ID, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(1))
		})

		It("aceita amount zero informado", func() {
			zero := valueobjects.MustParseMoney("0")
			created, err := env.payments.CreatePayment(ctx, services.CreatePaymentInput{DealID: deal.ID, Amount: &zero})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Amount.String()).To(Equal("0.00"))
		})
	})

	Describe("GetPayment", func() {
		It("retorna not found para id inexistente", func() {
			_, err := env.payments.GetPayment(ctx, 424242, alice)
			Expect(err).To(MatchError(errors.ErrPaymentNotFound))
		})

		It("retorna forbidden quando o deal é de outro usuário", func() {
			_, err := env.payments.GetPayment(ctx, payment.ID, bob)
			Expect(err).To(MatchError(errors.ErrForbidden))
		})
	})

	Describe("ListPayments", func() {
		It("une os pagamentos de todos os deals, mais recentes primeiro", func() {
			other := env.createDeal(alice, "Globex")
			latest, err := env.payments.CreatePayment(ctx, services.CreatePaymentInput{
				DealID: other.ID, Amount: money("99.99"),
			})
			Expect(err).NotTo(HaveOccurred())
			bobDeal := env.createDeal(bob, "Initech")
			_, err = env.payments.CreatePayment(ctx, services.CreatePaymentInput{
				DealID: bobDeal.ID, Amount: money("1"),
			})
			Expect(err).NotTo(HaveOccurred())

			payments, err := env.payments.ListPayments(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(2))
			Expect(payments[0].ID).To(Equal(latest.ID))
			Expect(payments[1].ID).To(Equal(payment.ID))
		})

		It("exige posse para listar por deal", func() {
			_, err := env.payments.ListPaymentsForDeal(ctx, deal.ID, bob)
			Expect(err).To(MatchError(errors.ErrDealNotFound))

			payments, err := env.payments.ListPaymentsForDeal(ctx, deal.ID, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(1))
		})
	})

	Describe("UpdatePayment", func() {
		It("marca como pago", func() {
			paid := true
			updated, err := env.payments.UpdatePayment(ctx, payment.ID, alice, entities.PaymentChanges{Paid: &paid})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Paid).To(BeTrue())
		})

		It("retorna forbidden para pagamento alheio sem alterar", func() {
			paid := true
			_, err := env.payments.UpdatePayment(ctx, payment.ID, bob, entities.PaymentChanges{Paid: &paid})
			Expect(err).To(MatchError(errors.ErrForbidden))

			found, err := env.payments.GetPayment(ctx, payment.ID, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Paid).To(BeFalse())
		})

		It("retorna not found para pagamento inexistente", func() {
			paid := true
			_, err := env.payments.UpdatePayment(ctx, 777, alice, entities.PaymentChanges{Paid: &paid})
			Expect(err).To(MatchError(errors.ErrPaymentNotFound))
		})

		It("valida o tamanho de mode", func() {
			mode := string(make([]byte, 101))
			_, err := env.payments.UpdatePayment(ctx, payment.ID, alice, entities.PaymentChanges{Mode: &mode})
			Expect(errors.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("DeletePayment", func() {
		It("distingue inexistente de alheio", func() {
			Expect(env.payments.DeletePayment(ctx, payment.ID, bob)).To(MatchError(errors.ErrForbidden))
			Expect(env.payments.DeletePayment(ctx, payment.ID, alice)).To(Succeed())
			Expect(env.payments.DeletePayment(ctx, payment.ID, alice)).To(MatchError(errors.ErrPaymentNotFound))
		})
	})
})
