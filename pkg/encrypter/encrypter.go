package encrypter

import "golang.org/x/crypto/bcrypt"

//go:generate mockery --name Encrypter
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt-backed Encrypter. Out-of-range costs fall back to bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &implEncrypter{cost: cost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *implEncrypter) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
