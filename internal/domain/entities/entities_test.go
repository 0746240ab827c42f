package entities

import (
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var domainErr *domainerrors.DomainError
	if !errors.As(err, &domainErr) || !domainerrors.IsValidation(err) {
		t.Fatalf("esperava erro de validação, obteve %v", err)
	}
	return domainErr.Field
}

func TestEnums(t *testing.T) {
	t.Run("plataformas", func(t *testing.T) {
		for _, p := range []string{"instagram", "youtube", "tiktok", "twitter", "linkedin", "other"} {
			if err := ValidatePlatform(p); err != nil {
				t.Errorf("%s deveria ser válida: %v", p, err)
			}
		}
		if field := fieldOf(t, ValidatePlatform("YouTube")); field != "platform" {
			t.Errorf("esperava campo platform, obteve %s", field)
		}
	})

	t.Run("status", func(t *testing.T) {
		if err := ValidateDealStatus("content_delivered"); err != nil {
			t.Errorf("content_delivered deveria ser válido: %v", err)
		}
		if field := fieldOf(t, ValidateDealStatus("won")); field != "status" {
			t.Errorf("esperava campo status, obteve %s", field)
		}
	})

	t.Run("tipos de lembrete", func(t *testing.T) {
		if err := ValidateReminderType("follow_up"); err != nil {
			t.Errorf("follow_up deveria ser válido: %v", err)
		}
		if field := fieldOf(t, ValidateReminderType("")); field != "type" {
			t.Errorf("esperava campo type, obteve %s", field)
		}
	})

	t.Run("lista de valores aceitos", func(t *testing.T) {
		if got := AllowedDealStatuses(); got != "lead, negotiation, signed, content_delivered, paid" {
			t.Errorf("lista inesperada: %s", got)
		}
	})
}

func TestDeal_Validate(t *testing.T) {
	valid := func() *Deal {
		return &Deal{
			UserID:    "u-1",
			BrandName: "Acme",
			Platform:  PlatformInstagram,
			DealValue: valueobjects.MustParseMoney("100"),
			Status:    DealStatusLead,
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("deal válido rejeitado: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(d *Deal)
		field  string
	}{
		{"sem usuário", func(d *Deal) { d.UserID = "" }, "userId"},
		{"marca vazia", func(d *Deal) { d.BrandName = "" }, "brandName"},
		{"marca longa", func(d *Deal) { d.BrandName = strings.Repeat("á", 256) }, "brandName"},
		{"plataforma inválida", func(d *Deal) { d.Platform = "myspace" }, "platform"},
		{"status inválido", func(d *Deal) { d.Status = "" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			if field := fieldOf(t, d.Validate()); field != tt.field {
				t.Errorf("esperava campo %s, obteve %s", tt.field, field)
			}
		})
	}

	t.Run("marca com 255 caracteres multibyte", func(t *testing.T) {
		d := valid()
		d.BrandName = strings.Repeat("á", 255)
		if err := d.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve %v", err)
		}
	})
}

func TestChanges(t *testing.T) {
	t.Run("DealChanges vazio", func(t *testing.T) {
		if !(DealChanges{}).IsEmpty() {
			t.Error("esperava IsEmpty")
		}
		status := DealStatus("won")
		if field := fieldOf(t, DealChanges{Status: &status}.Validate()); field != "status" {
			t.Errorf("esperava campo status, obteve %s", field)
		}
	})

	t.Run("PaymentChanges limita mode", func(t *testing.T) {
		mode := strings.Repeat("x", 101)
		if field := fieldOf(t, PaymentChanges{Mode: &mode}.Validate()); field != "mode" {
			t.Errorf("esperava campo mode, obteve %s", field)
		}
	})

	t.Run("ContractChanges valida a URL", func(t *testing.T) {
		for _, url := range []string{"https://cdn/x.pdf", "http://cdn/x.pdf", "/files/x.pdf"} {
			u := url
			if err := (ContractChanges{FileURL: &u}).Validate(); err != nil {
				t.Errorf("%s deveria ser aceita: %v", url, err)
			}
		}
		bad := "ftp://cdn/x.pdf"
		if field := fieldOf(t, ContractChanges{FileURL: &bad}.Validate()); field != "fileUrl" {
			t.Errorf("esperava campo fileUrl, obteve %s", field)
		}
	})

	t.Run("ReminderChanges", func(t *testing.T) {
		empty := ""
		if field := fieldOf(t, ReminderChanges{Title: &empty}.Validate()); field != "title" {
			t.Errorf("esperava campo title, obteve %s", field)
		}
		zero := time.Time{}
		if field := fieldOf(t, ReminderChanges{RemindAt: &zero}.Validate()); field != "remindAt" {
			t.Errorf("esperava campo remindAt, obteve %s", field)
		}
		sent := true
		if (ReminderChanges{Sent: &sent}).IsEmpty() {
			t.Error("não deveria estar vazio")
		}
	})
}

func TestOwnership(t *testing.T) {
	deal := &Deal{UserID: "u-1"}
	reminder := &Reminder{UserID: "u-1"}

	if !deal.IsOwnedBy("u-1") || deal.IsOwnedBy("u-2") {
		t.Error("posse do deal incorreta")
	}
	if !reminder.IsOwnedBy("u-1") || reminder.IsOwnedBy("u-2") {
		t.Error("posse do lembrete incorreta")
	}
}
