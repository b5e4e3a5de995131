package model

// Client is a business partner buying invoiced goods.
type Client struct {
	Base
	Code       string `gorm:"type:varchar(65);uniqueIndex;not null"`
	Name       string `gorm:"type:varchar(255);index;not null"`
	Proprietor string `gorm:"type:varchar(255)"`
	Cell       string `gorm:"type:varchar(20)"`
	Email      string `gorm:"type:varchar(255)"`
	Billing    string `gorm:"type:varchar(255)"`
	Shipping   string `gorm:"type:varchar(255)"`
	Production string `gorm:"type:varchar(255)"`

	Invoices []Invoice `gorm:"foreignKey:ClientID"`
}
