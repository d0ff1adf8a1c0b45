package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopflow/internal/domain"
)

func TestCatalogService_AddProduct(t *testing.T) {
	f := newFixtures(t)

	res := f.catalogSvc.AddProduct(&domain.Product{Name: "Klavye", Price: 349.90, Stock: 10})
	require.True(t, res.Success, res.Error)

	assert.NotEmpty(t, res.Data.ID)
	assert.Equal(t, domain.CategoryOther, res.Data.Category, "kategori verilmediğinde other atanır")
}

func TestCatalogService_AddProduct_Validation(t *testing.T) {
	f := newFixtures(t)

	cases := []struct {
		name    string
		product *domain.Product
	}{
		{"sıfır fiyat", &domain.Product{Name: "A", Price: 0, Stock: 1}},
		{"negatif fiyat", &domain.Product{Name: "B", Price: -10, Stock: 1}},
		{"negatif stok", &domain.Product{Name: "C", Price: 10, Stock: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := f.catalogSvc.AddProduct(tc.product)
			require.False(t, res.Success)
			assert.ErrorIs(t, res.Err(), domain.ErrInvalidPrice)
			assert.Equal(t, domain.KindValidation, res.Kind())
		})
	}

	assert.Empty(t, f.products.All(), "geçersiz ürünler depoya yazılmaz")
}

func TestCatalogService_ListProducts(t *testing.T) {
	f := newFixtures(t)

	f.seedProduct(t, "Klavye", 100, 5)
	f.seedProduct(t, "Mouse", 50, 5)
	book := f.products.Create(&domain.Product{Name: "Roman", Price: 20, Category: domain.CategoryBooks, Stock: 3})

	all := f.catalogSvc.ListProducts("")
	require.True(t, all.Success)
	assert.Len(t, all.Data, 3)

	books := f.catalogSvc.ListProducts(domain.CategoryBooks)
	require.True(t, books.Success)
	require.Len(t, books.Data, 1)
	assert.Equal(t, book.ID, books.Data[0].ID)

	empty := f.catalogSvc.ListProducts(domain.CategorySports)
	require.True(t, empty.Success, "boş kategori hata değildir")
	assert.Empty(t, empty.Data)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	f := newFixtures(t)
	product := f.seedProduct(t, "Klavye", 100, 5)

	res := f.catalogSvc.UpdateProduct(product.ID, map[string]interface{}{"price": 89.90})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 89.90, res.Data.Price)
	assert.Equal(t, 5, res.Data.Stock)

	bad := f.catalogSvc.UpdateProduct(product.ID, map[string]interface{}{"price": -1.0})
	require.False(t, bad.Success)
	assert.ErrorIs(t, bad.Err(), domain.ErrInvalidPrice)

	missing := f.catalogSvc.UpdateProduct("yok", map[string]interface{}{"price": 10.0})
	assert.Equal(t, domain.KindNotFound, missing.Kind())
}

func TestCatalogService_UpdateProduct_ValidationIsTypeAgnostic(t *testing.T) {
	f := newFixtures(t)
	product := f.seedProduct(t, "Klavye", 100, 5)

	// deponun kabul ettiği her sayısal tür doğrulamadan da geçmeli
	cases := []struct {
		name   string
		fields map[string]interface{}
	}{
		{"float stok", map[string]interface{}{"stock": -7.0}},
		{"int fiyat", map[string]interface{}{"price": -50}},
		{"int32 stok", map[string]interface{}{"stock": int32(-3)}},
		{"float32 fiyat", map[string]interface{}{"price": float32(0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := f.catalogSvc.UpdateProduct(product.ID, tc.fields)
			require.False(t, res.Success)
			assert.ErrorIs(t, res.Err(), domain.ErrInvalidPrice)
		})
	}

	stored, _ := f.products.FindByID(product.ID)
	assert.Equal(t, 5, stored.Stock, "geçersiz güncellemeler ürünü değiştirmez")
	assert.Equal(t, 100.0, stored.Price)

	// geçerli değerler tür fark etmeksizin yazılır
	res := f.catalogSvc.UpdateProduct(product.ID, map[string]interface{}{"stock": 8})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, 8, res.Data.Stock)
}

func TestCatalogService_DeleteProduct_RoleCheck(t *testing.T) {
	f := newFixtures(t)
	product := f.seedProduct(t, "Klavye", 100, 5)

	denied := f.catalogSvc.DeleteProduct(product.ID, domain.UserRoleCustomer)
	require.False(t, denied.Success)
	assert.ErrorIs(t, denied.Err(), domain.ErrUnauthorized)
	assert.Equal(t, domain.KindAuthFailure, denied.Kind())

	_, stillThere := f.products.FindByID(product.ID)
	assert.True(t, stillThere, "yetkisiz silme ürünü etkilemez")

	allowed := f.catalogSvc.DeleteProduct(product.ID, domain.UserRoleAdmin)
	require.True(t, allowed.Success, allowed.Error)

	_, gone := f.products.FindByID(product.ID)
	assert.False(t, gone)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	f := newFixtures(t)

	res := f.catalogSvc.DeleteProduct("yok", domain.UserRoleSeller)
	require.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrProductNotFound)
}
