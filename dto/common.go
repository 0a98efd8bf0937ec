package dto

// ListQuery gom các tham số lọc/sắp xếp/phân trang của bảng quản trị
type ListQuery struct {
	Search string `form:"search"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"` // asc | desc
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// Normalize đưa page/limit về giá trị hợp lệ, mặc định trang 1, 10 dòng
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}
