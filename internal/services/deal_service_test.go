package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/storage"
	"github.com/rafabene/dealflow-backend/internal/services"
)

var _ = Describe("DealService", func() {
	var (
		ctx context.Context
		env *serviceEnv
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = newServiceEnv()
	})

	Describe("CreateDeal", func() {
		It("cria com status lead por padrão", func() {
			deal := env.createDeal(alice, "Acme")

			Expect(deal.ID).To(BeNumerically(">", 0))
			Expect(deal.UserID).To(Equal(alice))
			Expect(deal.Status).To(Equal(entities.DealStatusLead))
		})

		It("rejeita plataforma fora da enumeração sem gravar", func() {
			_, err := env.deals.CreateDeal(ctx, alice, services.CreateDealInput{
				BrandName: "Acme",
				Platform:  entities.Platform("myspace"),
				DealValue: valueobjects.MustParseMoney("10"),
			})

			Expect(errors.IsValidation(err)).To(BeTrue())
			deals, err := env.deals.ListDeals(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(deals).To(BeEmpty())
		})

		It("rejeita status desconhecido", func() {
			status := entities.DealStatus("won")
			_, err := env.deals.CreateDeal(ctx, alice, services.CreateDealInput{
				BrandName: "Acme",
				Platform:  entities.PlatformTikTok,
				DealValue: valueobjects.MustParseMoney("10"),
				Status:    &status,
			})
			Expect(errors.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("GetDeal", func() {
		It("não revela deals de outro usuário", func() {
			deal := env.createDeal(alice, "Acme")

			_, err := env.deals.GetDeal(ctx, deal.ID, bob)
			Expect(err).To(MatchError(errors.ErrDealNotFound))

			_, err = env.deals.GetDeal(ctx, 99999, bob)
			Expect(err).To(MatchError(errors.ErrDealNotFound))
		})
	})

	Describe("ListDeals", func() {
		It("retorna os mais recentes primeiro", func() {
			first := env.createDeal(alice, "First")
			second := env.createDeal(alice, "Second")
			env.createDeal(bob, "Other")

			deals, err := env.deals.ListDeals(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(deals).To(HaveLen(2))
			Expect(deals[0].ID).To(Equal(second.ID))
			Expect(deals[1].ID).To(Equal(first.ID))
		})
	})

	Describe("UpdateDeal", func() {
		It("atualiza o status do dono", func() {
			deal := env.createDeal(alice, "Acme")
			status := entities.DealStatusSigned

			updated, err := env.deals.UpdateDeal(ctx, deal.ID, alice, entities.DealChanges{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.DealStatusSigned))
			Expect(updated.BrandName).To(Equal("Acme"))
		})

		It("retorna not found para deal alheio e não altera nada", func() {
			deal := env.createDeal(alice, "Acme")
			status := entities.DealStatusPaid

			_, err := env.deals.UpdateDeal(ctx, deal.ID, bob, entities.DealChanges{Status: &status})
			Expect(err).To(MatchError(errors.ErrDealNotFound))

			current, err := env.deals.GetDeal(ctx, deal.ID, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Status).To(Equal(entities.DealStatusLead))
		})

		It("revalida enums informados", func() {
			deal := env.createDeal(alice, "Acme")
			platform := entities.Platform("orkut")

			_, err := env.deals.UpdateDeal(ctx, deal.ID, alice, entities.DealChanges{Platform: &platform})
			Expect(errors.IsValidation(err)).To(BeTrue())
		})
	})

	Describe("DeleteDeal", func() {
		It("remove dependentes e os PDFs dos contratos", func() {
			deal := env.createDeal(alice, "Acme")
			_, err := env.payments.CreatePayment(ctx, services.CreatePaymentInput{
				DealID: deal.ID, Amount: money("50"),
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = env.contracts.UploadContract(ctx, alice, services.UploadContractInput{
				DealID: deal.ID, Content: []byte("%PDF"), ContentType: storage.PDFContentType,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.objects.Len()).To(Equal(1))

			Expect(env.deals.DeleteDeal(ctx, deal.ID, alice)).To(Succeed())

			payments, err := env.payments.ListPayments(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(BeEmpty())
			contracts, err := env.contracts.ListContracts(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(contracts).To(BeEmpty())
			Expect(env.objects.Len()).To(BeZero())
		})

		It("conclui mesmo quando o storage falha", func() {
			deal := env.createDeal(alice, "Acme")
			_, err := env.contracts.UploadContract(ctx, alice, services.UploadContractInput{
				DealID: deal.ID, Content: []byte("%PDF"), ContentType: storage.PDFContentType,
			})
			Expect(err).NotTo(HaveOccurred())
			env.objects.DeleteErr = context.DeadlineExceeded

			Expect(env.deals.DeleteDeal(ctx, deal.ID, alice)).To(Succeed())
			_, err = env.deals.GetDeal(ctx, deal.ID, alice)
			Expect(err).To(MatchError(errors.ErrDealNotFound))
		})

		It("não remove deal de outro usuário", func() {
			deal := env.createDeal(alice, "Acme")

			Expect(env.deals.DeleteDeal(ctx, deal.ID, bob)).To(MatchError(errors.ErrDealNotFound))
			_, err := env.deals.GetDeal(ctx, deal.ID, alice)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
