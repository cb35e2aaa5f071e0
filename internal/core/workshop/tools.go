package workshop

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func validateLogin(login string) error {
	if login == "" {
		return ErrLoginNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

func validateClient(client *model.Client) error {
	if client.Phone == "" {
		return ErrPhoneNotValid
	}
	if client.FullName == "" {
		return ErrFullNameNotValid
	}
	return nil
}

func validateOrder(order *model.Order) error {
	if order.ClientID == 0 {
		return ErrClientRequired
	}
	if order.TypeID == 0 {
		return ErrProductTypeRequired
	}
	if !order.Status.Valid() {
		return ErrStatusNotValid
	}
	if order.Price.IsNegative() || order.TotalWeight.IsNegative() {
		return ErrAmountNotValid
	}
	for _, line := range order.Materials {
		if line.MaterialID == 0 {
			return ErrMaterialRequired
		}
		if !line.Weight.IsPositive() {
			return ErrWeightNotValid
		}
	}
	return nil
}

func validateMaterial(material *model.Material) error {
	if material.Name == "" {
		return ErrNameNotValid
	}
	if material.CostPerGram.IsNegative() {
		return ErrAmountNotValid
	}
	return nil
}

func validateProductType(productType *model.ProductType) error {
	if productType.Name == "" {
		return ErrNameNotValid
	}
	if productType.LaborCost.IsNegative() {
		return ErrAmountNotValid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
