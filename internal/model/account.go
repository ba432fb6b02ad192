package model

// CategoryColor tags a chart category for display.
type CategoryColor string

const (
	ColorBlue    CategoryColor = "blue"
	ColorGreen   CategoryColor = "green"
	ColorRed     CategoryColor = "red"
	ColorEmerald CategoryColor = "emerald"
	ColorOrange  CategoryColor = "orange"
	ColorViolet  CategoryColor = "violet"
	ColorAmber   CategoryColor = "amber"
	ColorSlate   CategoryColor = "slate"
)

// OrDefault returns c, or slate when c is not a known color.
func (c CategoryColor) OrDefault() CategoryColor {
	switch c {
	case ColorBlue, ColorGreen, ColorRed, ColorEmerald, ColorOrange, ColorViolet, ColorAmber, ColorSlate:
		return c
	default:
		return ColorSlate
	}
}

// Account is one entry in the chart of accounts. AccountID is a numeric
// string following NS 4102 ("1500", "3000").
type Account struct {
	AccountID   string `yaml:"account_id" json:"accountId"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Subcategory groups accounts for display.
type Subcategory struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Accounts []Account `yaml:"accounts" json:"accounts"`
}

// Category is a top-level chart grouping. AccountRange is a label only;
// membership comes from Subcategories.
type Category struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Description   string        `yaml:"description" json:"description"`
	AccountRange  string        `yaml:"account_range" json:"accountRange"`
	Subcategories []Subcategory `yaml:"subcategories" json:"subcategories"`
	Color         CategoryColor `yaml:"color" json:"color"`
}

// MemberAccount is an account together with the subcategory that declares it.
type MemberAccount struct {
	Account
	SubcategoryID   string
	SubcategoryName string
}

// Accounts flattens the category in declared order.
func (c Category) Accounts() []MemberAccount {
	var out []MemberAccount
	for _, sub := range c.Subcategories {
		for _, a := range sub.Accounts {
			out = append(out, MemberAccount{Account: a, SubcategoryID: sub.ID, SubcategoryName: sub.Name})
		}
	}
	return out
}

// AccountIDs returns the set of account IDs declared anywhere in the category.
func (c Category) AccountIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, sub := range c.Subcategories {
		for _, a := range sub.Accounts {
			ids[a.AccountID] = struct{}{}
		}
	}
	return ids
}
