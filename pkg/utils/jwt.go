package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// CreateJWTToken signs a token for one actor namespace. Seller, user and
// admin tokens are signed with different keys, so a token from one namespace
// never verifies against another's routes.
func CreateJWTToken(accountID string, accountName string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["accountID"] = accountID
	claims["name"] = accountName
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenAccount(c echo.Context) (string, string) {
	account := c.Get("user").(*jwt.Token)
	if account.Valid {
		claims := account.Claims.(jwt.MapClaims)
		accountID := claims["accountID"].(string)
		name := claims["name"].(string)
		return accountID, name
	}
	return "", ""
}
