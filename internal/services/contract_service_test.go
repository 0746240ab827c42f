package services_test

import (
	"context"
	stderrors "errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/storage"
	"github.com/rafabene/dealflow-backend/internal/services"
)

var _ = Describe("ContractService", func() {
	var (
		ctx  context.Context
		env  *serviceEnv
		deal *entities.Deal
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = newServiceEnv()
		deal = env.createDeal(alice, "Acme")
	})

	upload := func(userID string, dealID int64) (*entities.Contract, error) {
		name := "contrato.pdf"
		return env.contracts.UploadContract(ctx, userID, services.UploadContractInput{
			DealID:      dealID,
			FileName:    &name,
			Content:     []byte("%PDF-1.7"),
			ContentType: storage.PDFContentType,
		})
	}

	Describe("UploadContract", func() {
		It("envia o PDF e grava a URL pública", func() {
			contract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(contract.FileURL).To(HavePrefix("https://files.test/storage/v1/object/public/contracts/" + alice + "/"))
			Expect(*contract.FileName).To(Equal("contrato.pdf"))
			Expect(env.objects.Len()).To(Equal(1))
		})

		It("não envia nada para deal alheio", func() {
			_, err := upload(bob, deal.ID)
			Expect(err).To(MatchError(errors.ErrDealNotFound))
			Expect(env.objects.Puts).To(BeZero())
		})

		It("rejeita arquivo que não é PDF", func() {
			_, err := env.contracts.UploadContract(ctx, alice, services.UploadContractInput{
				DealID: deal.ID, Content: []byte("png"), ContentType: "image/png",
			})
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(env.objects.Puts).To(BeZero())
		})

		It("remove o arquivo enviado quando a gravação falha", func() {
			longName := strings.Repeat("a", 256)
			_, err := env.contracts.UploadContract(ctx, alice, services.UploadContractInput{
				DealID: deal.ID, FileName: &longName, Content: []byte("%PDF"), ContentType: storage.PDFContentType,
			})
			Expect(errors.IsValidation(err)).To(BeTrue())
			Expect(env.objects.Puts).To(Equal(1))
			Expect(env.objects.Len()).To(BeZero())
		})
	})

	Describe("CreateContract", func() {
		It("valida fileUrl", func() {
			_, err := env.contracts.CreateContract(ctx, alice, services.CreateContractInput{
				DealID: deal.ID, FileURL: "ftp://files/a.pdf",
			})
			Expect(errors.IsValidation(err)).To(BeTrue())
		})

		It("aceita caminhos relativos", func() {
			contract, err := env.contracts.CreateContract(ctx, alice, services.CreateContractInput{
				DealID: deal.ID, FileURL: "/contracts/a.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(contract.ID).To(BeNumerically(">", 0))
		})

		It("rejeita URL de arquivo de outro usuário no bucket", func() {
			aliceContract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())
			bobDeal := env.createDeal(bob, "Other")

			_, err = env.contracts.CreateContract(ctx, bob, services.CreateContractInput{
				DealID: bobDeal.ID, FileURL: aliceContract.FileURL,
			})
			var domainErr *errors.DomainError
			Expect(stderrors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Field).To(Equal("fileUrl"))
			Expect(domainErr.Message).To(Equal("validation.file_url_owner"))

			bobContract, err := upload(bob, bobDeal.ID)
			Expect(err).NotTo(HaveOccurred())
			foreign := aliceContract.FileURL
			_, err = env.contracts.UpdateContract(ctx, bobContract.ID, bob, entities.ContractChanges{FileURL: &foreign})
			Expect(errors.IsValidation(err)).To(BeTrue())

			own := bobContract.FileURL + "?download=1"
			_, err = env.contracts.UpdateContract(ctx, bobContract.ID, bob, entities.ContractChanges{FileURL: &own})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("GetContract e UpdateContract", func() {
		It("aplica as regras 404/403", func() {
			contract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = env.contracts.GetContract(ctx, contract.ID, bob)
			Expect(err).To(MatchError(errors.ErrForbidden))
			_, err = env.contracts.GetContract(ctx, 5555, alice)
			Expect(err).To(MatchError(errors.ErrContractNotFound))

			badURL := "not-a-url"
			_, err = env.contracts.UpdateContract(ctx, contract.ID, alice, entities.ContractChanges{FileURL: &badURL})
			Expect(errors.IsValidation(err)).To(BeTrue())

			newURL := "https://cdn.example.com/c.pdf"
			_, err = env.contracts.UpdateContract(ctx, contract.ID, bob, entities.ContractChanges{FileURL: &newURL})
			Expect(err).To(MatchError(errors.ErrForbidden))

			updated, err := env.contracts.UpdateContract(ctx, contract.ID, alice, entities.ContractChanges{FileURL: &newURL})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FileURL).To(Equal(newURL))
		})
	})

	Describe("DeleteContract", func() {
		It("remove a linha e o arquivo", func() {
			contract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(env.contracts.DeleteContract(ctx, contract.ID, alice)).To(Succeed())
			Expect(env.objects.Len()).To(BeZero())
			_, err = env.contracts.GetContract(ctx, contract.ID, alice)
			Expect(err).To(MatchError(errors.ErrContractNotFound))
		})

		It("remove a linha mesmo quando o storage falha", func() {
			contract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())
			env.objects.DeleteErr = context.Canceled

			Expect(env.contracts.DeleteContract(ctx, contract.ID, alice)).To(Succeed())
			_, err = env.contracts.GetContract(ctx, contract.ID, alice)
			Expect(err).To(MatchError(errors.ErrContractNotFound))
		})

		It("retorna forbidden para contrato alheio e mantém o arquivo", func() {
			contract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(env.contracts.DeleteContract(ctx, contract.ID, bob)).To(MatchError(errors.ErrForbidden))
			Expect(env.objects.Len()).To(Equal(1))
		})

		It("não apaga arquivo de outro usuário referenciado por contrato próprio", func() {
			aliceContract, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())
			bobDeal := env.createDeal(bob, "Other")

			legacy := &entities.Contract{DealID: bobDeal.ID, FileURL: aliceContract.FileURL}
			Expect(env.contractRepo.Create(ctx, legacy)).To(Succeed())

			Expect(env.contracts.DeleteContract(ctx, legacy.ID, bob)).To(Succeed())
			Expect(env.objects.Deletes).To(BeZero())
			Expect(env.objects.Len()).To(Equal(1))

			again := &entities.Contract{DealID: bobDeal.ID, FileURL: aliceContract.FileURL}
			Expect(env.contractRepo.Create(ctx, again)).To(Succeed())
			Expect(env.deals.DeleteDeal(ctx, bobDeal.ID, bob)).To(Succeed())
			Expect(env.objects.Deletes).To(BeZero())

			_, err = env.contracts.GetContract(ctx, aliceContract.ID, alice)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("listagens", func() {
		It("lista por usuário e por deal", func() {
			_, err := upload(alice, deal.ID)
			Expect(err).NotTo(HaveOccurred())
			bobDeal := env.createDeal(bob, "Other")
			_, err = upload(bob, bobDeal.ID)
			Expect(err).NotTo(HaveOccurred())

			mine, err := env.contracts.ListContracts(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))

			_, err = env.contracts.ListContractsForDeal(ctx, bobDeal.ID, alice)
			Expect(err).To(MatchError(errors.ErrDealNotFound))
		})
	})
})
