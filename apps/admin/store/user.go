package store

import "toolmart-admin/apps/admin/model"

func (s *gormStore) CreateUser(u *model.User) error {
	var cnt int64
	s.db.Model(&model.User{}).
		Where("username = ? OR email = ?", u.Username, u.Email).
		Count(&cnt)
	if cnt > 0 {
		return ErrConflict
	}
	return translate(s.db.Create(u).Error)
}

func (s *gormStore) GetUserByID(id uint) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormStore) GetUserByUsername(username string) (*model.User, error) {
	var u model.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormStore) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormStore) UpdateUser(id uint, patch UserPatch) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.Email != nil {
		var cnt int64
		s.db.Model(&model.User{}).Where("email = ? AND id <> ?", *patch.Email, id).Count(&cnt)
		if cnt > 0 {
			return nil, ErrConflict
		}
		updates["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password // 已经是哈希
	}

	if len(updates) > 0 {
		if err := s.db.Model(&u).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &u, nil
}
