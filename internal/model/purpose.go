package model

// Purpose is a user-managed lookup naming ledger categories. It relates to
// Statement.Purpose by name equality, not by foreign key, so the summary
// report can list categories with zero postings.
type Purpose struct {
	Base
	Name string `gorm:"type:varchar(65);uniqueIndex;not null"`
}
