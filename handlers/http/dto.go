package httpHandler

import "collection-server/entities"

// Response projections are acyclic on purpose: entities carry back
// references for preloading, the wire format never does.

type UserResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PhotoResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type ItemResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	CategoryID  uint             `json:"category_id"`
	Category    CategoryResponse `json:"category"`
	Description string           `json:"description"`
	Condition   string           `json:"condition"`
	Photos      []PhotoResponse  `json:"photos"`
}

type ShareResponse struct {
	ID               uint         `json:"id"`
	SharedWithUserID uint         `json:"shared_with_user_id"`
	User             UserResponse `json:"user"`
}

type CollectionResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UserID      uint            `json:"user_id"`
	User        UserResponse    `json:"user"`
	Items       []ItemResponse  `json:"items"`
	Shares      []ShareResponse `json:"shares"`
}

func newUserResponse(user entities.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}
}

func newCategoryResponse(category entities.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func newItemResponse(item entities.Item) ItemResponse {
	photos := make([]PhotoResponse, 0, len(item.Photos))
	for _, photo := range item.Photos {
		photos = append(photos, PhotoResponse{ID: photo.ID, URL: photo.URL})
	}

	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		CategoryID:  item.CategoryID,
		Category:    newCategoryResponse(item.Category),
		Description: item.Description,
		Condition:   item.Condition,
		Photos:      photos,
	}
}

func newShareResponse(share entities.Share) ShareResponse {
	return ShareResponse{
		ID:               share.ID,
		SharedWithUserID: share.SharedWithUserID,
		User:             newUserResponse(share.SharedWithUser),
	}
}

func newCollectionResponse(collection entities.Collection) CollectionResponse {
	items := make([]ItemResponse, 0, len(collection.Items))
	for _, item := range collection.Items {
		items = append(items, newItemResponse(item))
	}

	shares := make([]ShareResponse, 0, len(collection.Shares))
	for _, share := range collection.Shares {
		shares = append(shares, newShareResponse(share))
	}

	return CollectionResponse{
		ID:          collection.ID,
		Name:        collection.Name,
		Description: collection.Description,
		UserID:      collection.UserID,
		User:        newUserResponse(collection.User),
		Items:       items,
		Shares:      shares,
	}
}

func newCollectionResponses(collections []entities.Collection) []CollectionResponse {
	out := make([]CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		out = append(out, newCollectionResponse(collection))
	}
	return out
}
