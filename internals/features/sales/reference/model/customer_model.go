// file: internals/features/sales/reference/model/customer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: customers
   ========================= */

type Customer struct {
	CustomerID uuid.UUID `json:"customer_id" gorm:"column:customer_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// kode publik pelanggan (id pada respons API)
	CustomerCode string `json:"customer_code" gorm:"column:customer_code;type:varchar(140);unique;not null"`
	CustomerName string `json:"customer_name" gorm:"column:customer_name;type:varchar(255);not null"`

	CustomerEmail  *string `json:"customer_email,omitempty" gorm:"column:customer_email;type:varchar(255)"`
	CustomerMobile *string `json:"customer_mobile,omitempty" gorm:"column:customer_mobile;type:varchar(40)"`

	CustomerIsBFFMember bool    `json:"customer_is_bff_member" gorm:"column:customer_is_bff_member;not null;default:false"`
	CustomerGroup       *string `json:"customer_group,omitempty" gorm:"column:customer_group;type:varchar(140)"`
	CustomerTerritory   *string `json:"customer_territory,omitempty" gorm:"column:customer_territory;type:varchar(140)"`

	CustomerDisabled bool `json:"customer_disabled" gorm:"column:customer_disabled;not null;default:false"`

	CustomerCreatedAt time.Time `json:"customer_created_at" gorm:"column:customer_created_at;type:timestamptz;not null;default:now()"`
	CustomerUpdatedAt time.Time `json:"customer_updated_at" gorm:"column:customer_updated_at;type:timestamptz;not null;default:now()"`
}

func (Customer) TableName() string { return "customers" }
