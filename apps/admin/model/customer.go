package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerType 客户类型
type CustomerType string

const (
	CustomerIndividual  CustomerType = "individual"
	CustomerContractor  CustomerType = "professional_contractor"
	CustomerIndustrial  CustomerType = "industrial_account"
	CustomerGovernment  CustomerType = "government_municipal"
	CustomerEducational CustomerType = "educational_institution"
)

func (t CustomerType) Valid() bool {
	switch t {
	case CustomerIndividual, CustomerContractor, CustomerIndustrial,
		CustomerGovernment, CustomerEducational:
		return true
	}
	return false
}

// Customer 买家档案，个人或单位
type Customer struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	CompanyName      string                      `gorm:"type:varchar(255)" json:"companyName,omitempty"`
	FirstName        string                      `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName         string                      `gorm:"type:varchar(100);not null" json:"lastName"`
	Email            string                      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string                      `gorm:"type:varchar(30)" json:"phone"`
	CustomerType     CustomerType                `gorm:"type:varchar(32);not null" json:"customerType"`
	TaxExempt        bool                        `gorm:"not null;default:false" json:"taxExempt"`
	CreditLimit      float64                     `gorm:"type:decimal(12,2);default:0" json:"creditLimit"`
	PaymentTermsDays int                         `gorm:"default:0" json:"paymentTermsDays"`
	Address          datatypes.JSONType[Address] `json:"address"`
	IsActive         bool                        `gorm:"not null" json:"isActive"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}
