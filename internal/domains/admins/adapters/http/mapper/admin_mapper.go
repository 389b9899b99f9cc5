package mapper

import (
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
)

// CreateRequest is the payload of POST /api/admin/users.
type CreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role,omitempty"`
}

type Admin struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     Admin     `json:"admin"`
}

func (r CreateRequest) ToInput() ports.CreateInput {
	return ports.CreateInput{Email: r.Email, Password: r.Password, FullName: r.FullName, Role: r.Role}
}

func FromDomain(a *domain.Admin) Admin {
	return Admin{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		Role:      string(a.Role),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

func FromDomainList(list []*domain.Admin) []Admin {
	out := make([]Admin, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomain(a))
	}
	return out
}

func FromSession(session *ports.Session) AuthResponse {
	return AuthResponse{
		Message:   "Login successful",
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Admin:     FromDomain(session.Admin),
	}
}
