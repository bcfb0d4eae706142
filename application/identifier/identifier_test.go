package identifier_test

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name      string
		region    string
		input     string
		wantKind  constant.IdentifierKind
		wantValue string
		wantErr   bool
	}{
		{name: "email", input: "user@example.com", wantKind: constant.IdentifierEmail, wantValue: "user@example.com"},
		{name: "email is lower-cased", input: " Bob@Example.COM ", wantKind: constant.IdentifierEmail, wantValue: "bob@example.com"},
		{name: "international phone", input: "+14155552671", wantKind: constant.IdentifierPhone, wantValue: "+14155552671"},
		{name: "formatted phone", input: "+1 (415) 555-2671", wantKind: constant.IdentifierPhone, wantValue: "+14155552671"},
		{name: "phone with dashes", input: "+1 415-555-2671", wantKind: constant.IdentifierPhone, wantValue: "+14155552671"},
		{name: "national phone with default region", region: "US", input: "4155552671", wantKind: constant.IdentifierPhone, wantValue: "+14155552671"},
		{name: "national phone without region", input: "4155552671", wantErr: true},
		{name: "phone shaped but invalid", input: "12345", wantErr: true},
		{name: "username", input: "alice_01", wantKind: constant.IdentifierUsername, wantValue: "alice_01"},
		{name: "username with dot and dash", input: "bob.smith-2", wantKind: constant.IdentifierUsername, wantValue: "bob.smith-2"},
		{name: "garbage", input: "not an identifier!!", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identifier.New(tt.region).Classify(tt.input)
			if tt.wantErr {
				var ce *identifier.ClassificationError
				require.True(t, errors.As(err, &ce), "want ClassificationError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantValue, got.Value)
		})
	}
}

func TestClassifier_ClassifyContact(t *testing.T) {
	c := identifier.New("")

	got, err := c.ClassifyContact("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, constant.IdentifierEmail, got.Kind)
	assert.Equal(t, constant.AuthTypeEmail, got.Channel())

	got, err = c.ClassifyContact("+14155552671")
	require.NoError(t, err)
	assert.Equal(t, constant.IdentifierPhone, got.Kind)
	assert.Equal(t, constant.AuthTypePhone, got.Channel())

	_, err = c.ClassifyContact("alice_01")
	var ce *identifier.ClassificationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "alice_01", ce.Input)
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, identifier.IsValidUsername("bob123"))
	assert.True(t, identifier.IsValidUsername("alice_01"))
	assert.False(t, identifier.IsValidUsername("bob"))
	assert.False(t, identifier.IsValidUsername("1234567"))
	assert.False(t, identifier.IsValidUsername("555-1234"))
	assert.False(t, identifier.IsValidUsername("bob smith"))
	assert.False(t, identifier.IsValidUsername("a234567890123456789012345678901"))
}
