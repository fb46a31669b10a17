package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/taskhive/internal/types"
)

const tokenIssuer = "taskhive"

var (
	jwtSecret string
	tokenTTL  time.Duration
)

// InitJWT loads the signing secret and token lifetime from the environment.
// A missing secret is a fatal startup condition, there is no default.
func InitJWT() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	tokenTTL = time.Hour

	if hours := os.Getenv("JWT_EXPIRES_HOURS"); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid JWT_EXPIRES_HOURS value %q", hours)
		}
		tokenTTL = time.Duration(parsed) * time.Hour
	}

	return nil
}

func TokenTTL() time.Duration {
	return tokenTTL
}

// Claims is the decoded identity carried by a session token.
type Claims struct {
	Email string
	Role  types.Role
}

func GenerateJWT(email string, role types.Role) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"iss":   tokenIssuer,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	email, _ := mapClaims["email"].(string)
	roleValue, _ := mapClaims["role"].(string)

	role, err := types.ParseRole(roleValue)

	if err != nil || email == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &Claims{Email: email, Role: role}, nil
}
