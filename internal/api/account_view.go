package api

import "github.com/lufarias/vetor/internal/models"

// accountView is the account as exposed to clients: everything except the
// credential fields.
type accountView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Role  string `json:"role"`
}

func newAccountView(account models.Account) accountView {
	return accountView{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Cargo: account.Cargo,
		Role:  account.Role,
	}
}
