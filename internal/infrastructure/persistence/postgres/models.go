package postgres

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DealModel é o model GORM para deals
type DealModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    string          `gorm:"type:varchar(255);not null;index"`
	BrandName string          `gorm:"type:varchar(255);not null"`
	Platform  string          `gorm:"type:varchar(50);not null"`
	DealValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status    string          `gorm:"type:varchar(50);not null;default:lead;index"`
	Deadline  *time.Time
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (DealModel) TableName() string {
	return "deals"
}

// PaymentModel é o model GORM para pagamentos
type PaymentModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	DealID      int64           `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Paid        bool            `gorm:"not null;default:false"`
	PaymentDate *time.Time
	Mode        *string   `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// ContractModel é o model GORM para contratos
type ContractModel struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	DealID             int64   `gorm:"not null;index"`
	FileURL            string  `gorm:"column:file_url;type:varchar(512);not null"`
	FileName           *string `gorm:"type:varchar(255)"`
	UsageEndDate       *time.Time
	ExclusivityEndDate *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

// ReminderModel é o model GORM para lembretes
type ReminderModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:varchar(255);not null;index"`
	DealID    *int64    `gorm:"index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	RemindAt  time.Time `gorm:"not null;index"`
	Sent      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

// AllModels lista os models na ordem de criação (deals antes dos filhos)
func AllModels() []interface{} {
	return []interface{}{&DealModel{}, &PaymentModel{}, &ContractModel{}, &ReminderModel{}}
}

// AutoMigrate cria o schema via GORM; usado com bancos sem suporte às migrations SQL (ex: sqlite em testes)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
