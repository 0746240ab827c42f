package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/services"
)

var _ = Describe("ReminderService", func() {
	var (
		ctx  context.Context
		env  *serviceEnv
		base time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = newServiceEnv()
		base = time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	})

	create := func(userID string, dealID *int64, title string, at time.Time) (*entities.Reminder, error) {
		return env.reminders.CreateReminder(ctx, userID, services.CreateReminderInput{
			DealID:   dealID,
			Type:     entities.ReminderTypeFollowUp,
			Title:    title,
			RemindAt: at,
		})
	}

	Describe("CreateReminder", func() {
		It("cria lembrete sem deal", func() {
			reminder, err := create(alice, nil, "Ligar para a marca", base)
			Expect(err).NotTo(HaveOccurred())
			Expect(reminder.DealID).To(BeNil())
			Expect(reminder.Sent).To(BeFalse())
		})

		It("rejeita deal de outro usuário", func() {
			bobDeal := env.createDeal(bob, "Other")
			_, err := create(alice, &bobDeal.ID, "x", base)
			Expect(err).To(MatchError(errors.ErrDealNotFound))

			reminders, err := env.reminders.ListReminders(ctx, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(reminders).To(BeEmpty())
		})

		It("rejeita tipo desconhecido", func() {
			_, err := env.reminders.CreateReminder(ctx, alice, services.CreateReminderInput{
				Type: entities.ReminderType("birthday"), Title: "x", RemindAt: base,
			})
			Expect(errors.IsValidation(err)).To(BeTrue())
		})
	})

	It("lista por remindAt decrescente", func() {
		_, err := create(alice, nil, "antes", base)
		Expect(err).NotTo(HaveOccurred())
		_, err = create(alice, nil, "depois", base.Add(24*time.Hour))
		Expect(err).NotTo(HaveOccurred())

		reminders, err := env.reminders.ListReminders(ctx, alice)
		Expect(err).NotTo(HaveOccurred())
		Expect(reminders).To(HaveLen(2))
		Expect(reminders[0].Title).To(Equal("depois"))
	})

	Describe("UpdateReminder", func() {
		It("verifica a posse pelo próprio lembrete", func() {
			reminder, err := create(alice, nil, "x", base)
			Expect(err).NotTo(HaveOccurred())
			sent := true

			_, err = env.reminders.UpdateReminder(ctx, reminder.ID, bob, entities.ReminderChanges{Sent: &sent})
			Expect(err).To(MatchError(errors.ErrReminderNotFound))

			updated, err := env.reminders.UpdateReminder(ctx, reminder.ID, alice, entities.ReminderChanges{Sent: &sent})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Sent).To(BeTrue())
		})

		It("exige posse do novo deal", func() {
			reminder, err := create(alice, nil, "x", base)
			Expect(err).NotTo(HaveOccurred())
			bobDeal := env.createDeal(bob, "Other")

			_, err = env.reminders.UpdateReminder(ctx, reminder.ID, alice, entities.ReminderChanges{DealID: &bobDeal.ID})
			Expect(err).To(MatchError(errors.ErrDealNotFound))

			mine := env.createDeal(alice, "Mine")
			updated, err := env.reminders.UpdateReminder(ctx, reminder.ID, alice, entities.ReminderChanges{DealID: &mine.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.DealID).To(Equal(mine.ID))
		})
	})

	Describe("DeleteReminder", func() {
		It("remove apenas do dono", func() {
			reminder, err := create(alice, nil, "x", base)
			Expect(err).NotTo(HaveOccurred())

			Expect(env.reminders.DeleteReminder(ctx, reminder.ID, bob)).To(MatchError(errors.ErrReminderNotFound))
			Expect(env.reminders.DeleteReminder(ctx, reminder.ID, alice)).To(Succeed())
			_, err = env.reminders.GetReminder(ctx, reminder.ID, alice)
			Expect(err).To(MatchError(errors.ErrReminderNotFound))
		})
	})
})
