package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, description, price, category, stock_quantity,
  sku, image_url, sustainability_rating, created_at, updated_at`

func (r *ProductRepo) List(f CatalogFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		s := "%" + f.Search + "%"
		args = append(args, s, s)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE `+where+` ORDER BY name ASC`, args...)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, description, price, category, stock_quantity, sku, image_url, sustainability_rating)
	  VALUES(?,?,?,?,?,?,?,?)
	`, p.Name, p.Description, p.Price, p.Category, p.StockQuantity, p.SKU, p.ImageURL, p.SustainabilityRating)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type ProductPatch struct {
	Name                 *string
	Description          *string
	Price                *decimal.Decimal
	Category             *string
	StockQuantity        *int
	SKU                  *string
	ImageURL             *string
	SustainabilityRating *int
}

func (r *ProductRepo) Update(id int64, p ProductPatch) (bool, error) {
	set := ""
	args := []any{}
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.StockQuantity != nil {
		add("stock_quantity", *p.StockQuantity)
	}
	if p.SKU != nil {
		add("sku", *p.SKU)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.SustainabilityRating != nil {
		add("sustainability_rating", *p.SustainabilityRating)
	}
	if set == "" {
		return false, nil
	}
	set += ", updated_at = CURRENT_TIMESTAMP"
	res, err := r.db.Exec(`UPDATE products SET `+set+` WHERE id = ?`, append(args, id)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProductRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
