package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRecord — товар в том виде, в котором он хранится (админ-сторона).
type ProductRecord struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	OldPrice      *decimal.Decimal
	CategoryID    *string
	CategoryName  string
	StockQuantity int
	Weight        *decimal.Decimal
	Unit          string
	IsFeatured    bool
	IsActive      bool
	SortOrder     int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Images        []RawImage
}

// ProductInput — плоский набор полей для создания/обновления товара.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	OldPrice      *decimal.Decimal
	CategoryID    *string
	StockQuantity int
	Weight        *decimal.Decimal
	Unit          string
	IsFeatured    bool
	IsActive      bool
	SortOrder     int
	ImageURL      string
}

// CategoryRecord — категория в хранилище.
type CategoryRecord struct {
	ID          string
	Name        string
	Slug        string
	Description string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
}

// CategoryInput — плоский набор полей категории.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
	IsActive    bool
}

// AdminUser — учётная запись администратора.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

// Dashboard — сводка для админ-панели.
type Dashboard struct {
	TotalProducts    int        `json:"totalProducts"`
	LowStockProducts int        `json:"lowStockProducts"`
	FeaturedProducts int        `json:"featuredProducts"`
	TotalCategories  int        `json:"totalCategories"`
	TopCategories    []Category `json:"topCategories"`
}

// LowStockThreshold — остаток, начиная с которого товар считается заканчивающимся.
const LowStockThreshold = 5

// StoredImage — результат загрузки изображения в хранилище.
type StoredImage struct {
	Bucket      string    `json:"bucket"`
	StoragePath string    `json:"storagePath"`
	PublicURL   string    `json:"publicUrl"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	MimeType    string    `json:"mimeType"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// AdminSession — данные администратора из проверенного токена.
type AdminSession struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResult — ответ на успешный вход.
type LoginResult struct {
	Token     string       `json:"token"`
	User      AdminSession `json:"user"`
	ExpiresIn string       `json:"expiresIn"`
}

// UploadRequest — загрузка изображения: содержимое файла в base64.
type UploadRequest struct {
	FileName   string `json:"fileName"`
	FileData   string `json:"fileData"`
	MimeType   string `json:"mimeType"`
	ProductSKU string `json:"productSku"`
}
