package domain

type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryFashion     ProductCategory = "fashion"
	CategoryHome        ProductCategory = "home"
	CategoryBooks       ProductCategory = "books"
	CategorySports      ProductCategory = "sports"
	CategoryOther       ProductCategory = "other"
)

type Product struct {
	BaseEntity
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Category     ProductCategory `json:"category"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"image_url,omitempty"`
	SellerID     string          `json:"seller_id"`
	Rating       float64         `json:"rating,omitempty"`
	ReviewsCount int             `json:"reviews_count,omitempty"`
}

type ProductRepository interface {
	Create(product *Product) *Product
	FindByID(id string) (*Product, bool)
	All() []*Product
	ByCategory(category ProductCategory) []*Product
	UpdateFields(id string, fields map[string]interface{}) (*Product, error)
	Delete(id string) bool

	// ReserveStock tüm kalemleri tek seferde doğrulayıp düşer; herhangi bir
	// kalem başarısız olursa hiçbir stok değişikliği görünür kalmaz.
	ReserveStock(lines []OrderLine) ([]OrderItem, error)
	ReleaseStock(items []OrderItem) error
	ApplyRating(id string, rating float64, count int) error
}

type CatalogService interface {
	AddProduct(product *Product) Result[*Product]
	GetProduct(id string) Result[*Product]
	ListProducts(category ProductCategory) Result[[]*Product]
	UpdateProduct(id string, fields map[string]interface{}) Result[*Product]
	DeleteProduct(id string, requestingRole UserRole) Result[*Product]
}
