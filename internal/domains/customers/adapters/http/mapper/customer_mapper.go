package mapper

import (
	customerdomain "github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
)

// Customer is the JSON shape exchanged by the customer handlers.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Province string `json:"province"`
	City     string `json:"city"`
	Type     string `json:"customerType"`
	Notes    string `json:"notes"`
	Image    string `json:"image,omitempty"`
}

func ToDomainCustomer(customer Customer) *customerdomain.Customer {
	return &customerdomain.Customer{
		Name:     customer.Name,
		Email:    customer.Email,
		Phone:    customer.Phone,
		Address:  customer.Address,
		Province: customer.Province,
		City:     customer.City,
		Type:     customer.Type,
		Notes:    customer.Notes,
		ImageURL: customer.Image,
	}
}

func FromDomainCustomer(customer *customerdomain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{
		ID:       customer.ID,
		Name:     customer.Name,
		Email:    customer.Email,
		Phone:    customer.Phone,
		Address:  customer.Address,
		Province: customer.Province,
		City:     customer.City,
		Type:     customer.Type,
		Notes:    customer.Notes,
		Image:    customer.ImageURL,
	}
}

func FromDomainCustomers(customers []*customerdomain.Customer) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		out = append(out, FromDomainCustomer(customer))
	}
	return out
}
