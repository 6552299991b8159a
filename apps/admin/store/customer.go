package store

import "toolmart-admin/apps/admin/model"

func (s *gormStore) CreateCustomer(c *model.Customer) error {
	var cnt int64
	s.db.Model(&model.Customer{}).Where("email = ?", c.Email).Count(&cnt)
	if cnt > 0 {
		return ErrConflict
	}
	return translate(s.db.Create(c).Error)
}

func (s *gormStore) GetCustomerByID(id uint) (*model.Customer, error) {
	var c model.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *gormStore) ListCustomers(filter CustomerFilter) ([]model.Customer, error) {
	query := s.db.Model(&model.Customer{})
	if filter.CustomerType != "" {
		query = query.Where("customer_type = ?", filter.CustomerType)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(company_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like, like,
		)
	}

	var customers []model.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *gormStore) UpdateCustomer(id uint, patch CustomerPatch) (*model.Customer, error) {
	var c model.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.Email != nil {
		var cnt int64
		s.db.Model(&model.Customer{}).Where("email = ? AND id <> ?", *patch.Email, id).Count(&cnt)
		if cnt > 0 {
			return nil, ErrConflict
		}
		updates["email"] = *patch.Email
	}
	if patch.CompanyName != nil {
		updates["company_name"] = *patch.CompanyName
	}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.CustomerType != nil {
		updates["customer_type"] = *patch.CustomerType
	}
	if patch.TaxExempt != nil {
		updates["tax_exempt"] = *patch.TaxExempt
	}
	if patch.CreditLimit != nil {
		updates["credit_limit"] = *patch.CreditLimit
	}
	if patch.PaymentTermsDays != nil {
		updates["payment_terms_days"] = *patch.PaymentTermsDays
	}
	if patch.Address != nil {
		updates["address"] = jsonAddress(patch.Address)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&c).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &c, nil
}
