package client_test

import (
	"testing"

	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdresse(t *testing.T) client.Adresse {
	t.Helper()
	adresse, err := client.NewAdresse("Rue des Lilas", "Namur", 12, 5000)
	require.NoError(t, err)
	return adresse
}

func TestNewClient(t *testing.T) {
	t.Run("valid_client_has_zero_id_until_persisted", func(t *testing.T) {
		c, err := client.NewClient("Dupont", "Marie", testAdresse(t), "marie.dupont@example.be", 478112233, "$2a$10$hash")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsZero())
		assert.Equal(t, "Dupont", c.Nom())
		assert.Equal(t, "Marie", c.Prenom())
		assert.Equal(t, "marie.dupont@example.be", c.Mail())
		assert.Equal(t, 478112233, c.Telephone())
		assert.Equal(t, "$2a$10$hash", c.PasswordHash())
	})

	t.Run("invalid_parameters", func(t *testing.T) {
		adresse := testAdresse(t)

		testCases := []struct {
			name        string
			build       func() (*client.Client, error)
			expectedErr error
		}{
			{
				"empty_nom",
				func() (*client.Client, error) {
					return client.NewClient("", "Marie", adresse, "m@example.be", 478112233, "hash")
				},
				client.ErrNomIsRequired,
			},
			{
				"empty_prenom",
				func() (*client.Client, error) {
					return client.NewClient("Dupont", "", adresse, "m@example.be", 478112233, "hash")
				},
				client.ErrPrenomIsRequired,
			},
			{
				"empty_mail",
				func() (*client.Client, error) {
					return client.NewClient("Dupont", "Marie", adresse, "", 478112233, "hash")
				},
				client.ErrMailIsRequired,
			},
			{
				"zero_telephone",
				func() (*client.Client, error) {
					return client.NewClient("Dupont", "Marie", adresse, "m@example.be", 0, "hash")
				},
				client.ErrTelephoneIsInvalid,
			},
			{
				"empty_password_hash",
				func() (*client.Client, error) {
					return client.NewClient("Dupont", "Marie", adresse, "m@example.be", 478112233, "")
				},
				client.ErrPasswordHashIsRequired,
			},
			{
				"unconstructed_adresse",
				func() (*client.Client, error) {
					return client.NewClient("Dupont", "Marie", client.Adresse{}, "m@example.be", 478112233, "hash")
				},
				client.ErrAdresseIsNotConstructed,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()

				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})
}

func TestRestoreClient(t *testing.T) {
	t.Run("restores_persisted_client_with_id", func(t *testing.T) {
		id := kernel.MustNewID(7)

		c, err := client.RestoreClient(id, "Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "hash")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var id kernel.ID

		_, err := client.RestoreClient(id, "Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "hash")

		require.Error(t, err)
	})
}

func TestClient_ApplyPatch(t *testing.T) {
	t.Run("overlays_only_supplied_fields", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.MustNewID(1), "Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "hash")
		require.NoError(t, err)

		newNom := "Durand"
		newTelephone := 499887766
		err = c.ApplyPatch(client.Patch{Nom: &newNom, Telephone: &newTelephone})

		require.NoError(t, err)
		assert.Equal(t, "Durand", c.Nom())
		assert.Equal(t, 499887766, c.Telephone())
		// untouched fields keep their prior values
		assert.Equal(t, "Marie", c.Prenom())
		assert.Equal(t, "m@example.be", c.Mail())
	})

	t.Run("is_idempotent", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.MustNewID(1), "Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "hash")
		require.NoError(t, err)

		newNom := "Durand"
		patch := client.Patch{Nom: &newNom}

		require.NoError(t, c.ApplyPatch(patch))
		require.NoError(t, c.ApplyPatch(patch))

		assert.Equal(t, "Durand", c.Nom())
	})

	t.Run("rejects_invalid_values", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.MustNewID(1), "Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "hash")
		require.NoError(t, err)

		empty := ""
		err = c.ApplyPatch(client.Patch{Mail: &empty})

		require.Error(t, err)
		require.ErrorIs(t, err, client.ErrMailIsRequired)
		// failed patch must not clear the prior value
		assert.Equal(t, "m@example.be", c.Mail())
	})

	t.Run("zero_value_client_is_rejected", func(t *testing.T) {
		var c client.Client

		err := c.ApplyPatch(client.Patch{})

		require.Error(t, err)
		assert.Equal(t, client.ErrClientIsNotConstructed, err)
	})
}

func TestClient_ChangePasswordHash(t *testing.T) {
	c, err := client.NewClient("Dupont", "Marie", testAdresse(t), "m@example.be", 478112233, "old-hash")
	require.NoError(t, err)

	require.NoError(t, c.ChangePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", c.PasswordHash())

	require.Error(t, c.ChangePasswordHash(""))
	assert.Equal(t, "new-hash", c.PasswordHash())
}

func TestClient_IsEqual(t *testing.T) {
	a, err := client.RestoreClient(kernel.MustNewID(1), "Dupont", "Marie", testAdresse(t), "a@example.be", 478112233, "hash")
	require.NoError(t, err)
	b, err := client.RestoreClient(kernel.MustNewID(1), "Durand", "Jean", testAdresse(t), "b@example.be", 478112234, "hash")
	require.NoError(t, err)
	c, err := client.RestoreClient(kernel.MustNewID(2), "Dupont", "Marie", testAdresse(t), "a@example.be", 478112233, "hash")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b), "same id means same client")
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
