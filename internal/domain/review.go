package domain

type Review struct {
	BaseEntity
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type ReviewRepository interface {
	Create(review *Review) *Review
	ByProductID(productID string) []*Review
	ByUserID(userID string) []*Review
}

type ReviewService interface {
	SubmitReview(review *Review) Result[*Review]
	GetProductReviews(productID string) Result[[]*Review]
	GetUserReviews(userID string) Result[[]*Review]
}
