package produit_test

import (
	"testing"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/produit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduit(t *testing.T) {
	t.Run("valid_produit", func(t *testing.T) {
		p, err := produit.NewProduit("Rosier", 1001, 2500, 10, "bon", produit.Fleur)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsZero())
		assert.Equal(t, "Rosier", p.Nom())
		assert.Equal(t, 1001, p.Reference())
		assert.Equal(t, 2500, p.PrixDeVente())
		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, "bon", p.Avis())
		assert.Equal(t, produit.Fleur, p.Categorie())
	})

	t.Run("zero_stock_and_price_are_allowed", func(t *testing.T) {
		p, err := produit.NewProduit("Rosier", 1001, 0, 0, "bon", produit.Fleur)

		require.NoError(t, err)
		assert.Equal(t, 0, p.PrixDeVente())
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("invalid_parameters", func(t *testing.T) {
		testCases := []struct {
			name        string
			nom         string
			reference   int
			prixDeVente int
			stock       int
			avis        string
			categorie   produit.Categorie
			expectedErr error
		}{
			{"empty_nom", "", 1001, 2500, 10, "bon", produit.Fleur, produit.ErrNomIsRequired},
			{"zero_reference", "Rosier", 0, 2500, 10, "bon", produit.Fleur, produit.ErrReferenceIsInvalid},
			{"negative_reference", "Rosier", -1, 2500, 10, "bon", produit.Fleur, produit.ErrReferenceIsInvalid},
			{"negative_prix", "Rosier", 1001, -1, 10, "bon", produit.Fleur, produit.ErrPrixDeVenteIsNegative},
			{"negative_stock", "Rosier", 1001, 2500, -1, "bon", produit.Fleur, produit.ErrStockIsNegative},
			{"empty_avis", "Rosier", 1001, 2500, 10, "", produit.Fleur, produit.ErrAvisIsRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := produit.NewProduit(tc.nom, tc.reference, tc.prixDeVente, tc.stock, tc.avis, tc.categorie)

				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})

	t.Run("unknown_categorie", func(t *testing.T) {
		_, err := produit.NewProduit("Rosier", 1001, 2500, 10, "bon", produit.UnknownCategorie)

		require.Error(t, err)
	})
}

func TestRestoreProduit(t *testing.T) {
	id := kernel.MustNewID(7)

	p, err := produit.RestoreProduit(id, "Rosier", 1001, 2500, 10, "bon", produit.Fleur)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
}

func TestProduit_ApplyPatch(t *testing.T) {
	restore := func(t *testing.T) *produit.Produit {
		t.Helper()
		p, err := produit.RestoreProduit(kernel.MustNewID(1), "Rosier", 1001, 2500, 10, "bon", produit.Fleur)
		require.NoError(t, err)
		return p
	}

	t.Run("overlays_only_supplied_fields", func(t *testing.T) {
		p := restore(t)

		stock := 25
		categorie := produit.Arbuste
		err := p.ApplyPatch(produit.Patch{Stock: &stock, Categorie: &categorie})

		require.NoError(t, err)
		assert.Equal(t, 25, p.Stock())
		assert.Equal(t, produit.Arbuste, p.Categorie())
		assert.Equal(t, "Rosier", p.Nom())
		assert.Equal(t, 2500, p.PrixDeVente())
	})

	t.Run("rejects_invalid_values", func(t *testing.T) {
		p := restore(t)

		stock := -5
		err := p.ApplyPatch(produit.Patch{Stock: &stock})

		require.Error(t, err)
		require.ErrorIs(t, err, produit.ErrStockIsNegative)
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("rejects_unknown_categorie", func(t *testing.T) {
		p := restore(t)

		categorie := produit.UnknownCategorie
		err := p.ApplyPatch(produit.Patch{Categorie: &categorie})

		require.Error(t, err)
		assert.Equal(t, produit.Fleur, p.Categorie())
	})
}

func TestProduit_Validate(t *testing.T) {
	var p produit.Produit

	err := p.Validate()

	require.Error(t, err)
	assert.Equal(t, produit.ErrProduitIsNotConstructed, err)
}
