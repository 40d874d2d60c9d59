package deal

// Type classifies the redemption channel of a deal.
type Type string

const (
	TypeInStore   Type = "in-store"
	TypeOnline    Type = "online"
	TypeAffiliate Type = "affiliate"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeInStore, TypeOnline, TypeAffiliate:
		return true
	default:
		return false
	}
}

// UserCategory targets a deal at an audience segment. Used for
// personalization only, never as an access filter.
type UserCategory string

const (
	CategoryStudent      UserCategory = "student"
	CategoryFamily       UserCategory = "family"
	CategoryProfessional UserCategory = "professional"
)

func (c UserCategory) IsValid() bool {
	switch c {
	case CategoryStudent, CategoryFamily, CategoryProfessional:
		return true
	default:
		return false
	}
}

// Categories is the fixed catalog category list shown in filter panels.
var Categories = []string{
	"All Deals",
	"Groceries",
	"Restaurants & Dining",
	"Coffee & Beverages",
	"Clothing & Fashion",
	"Electronics",
	"Home & Garden",
	"Health & Beauty",
	"Entertainment",
	"Travel",
}
