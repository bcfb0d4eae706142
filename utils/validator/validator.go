package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
	mut  sync.RWMutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
	})
}

// RegisterString adds a custom tag for string fields backed by a plain predicate.
func RegisterString(tag string, fn func(string) bool) error {
	Init()
	mut.Lock()
	defer mut.Unlock()
	return v.RegisterValidation(tag, func(fl gpvalidator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	mut.RLock()
	defer mut.RUnlock()
	return v.Struct(s)
}
