package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"
	"github.com/iffanyt/ChugCheck/utils"
)

func RegisterUser(email, password string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	base = strings.ReplaceAll(base, ".", "")
	userID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		UserID:    userID,
		Email:     email,
		Password:  hashedPassword,
		IsNewUser: true,
		Disabled:  false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
