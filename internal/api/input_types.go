package api

import "time"

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type recoverInput struct {
	Email string `json:"email"`
}

type verifyRecoveryInput struct {
	Email string `json:"email"`
	Code  int    `json:"code"`
}

type resetPasswordInput struct {
	Email       string `json:"email"`
	Code        int    `json:"code"`
	NewPassword string `json:"newPassword"`
}

type updateUserInput struct {
	Name string `json:"name"`
}

type categoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type transactionInput struct {
	CategoryID  string    `json:"categoryId"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
}
