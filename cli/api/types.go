package api

// Supplier represents a fabric supplier record as exchanged with the
// backend. ID is assigned by the backend on creation and never changes
// afterwards. Field names follow the backend's wire contract.
type Supplier struct {
	ID      string `json:"id,omitempty"`
	Nama    string `json:"nama"    validate:"required"`
	Alamat  string `json:"alamat"  validate:"required"`
	Telepon string `json:"telepon" validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	NPWP    string `json:"npwp"    validate:"required"`
}

// SearchFilter holds the optional substring filters for supplier search.
// Empty fields mean no constraint; an all-empty filter matches everything.
type SearchFilter struct {
	Nama    string
	Alamat  string
	Telepon string
}

// IsZero reports whether no filter field is set.
func (f SearchFilter) IsZero() bool {
	return f.Nama == "" && f.Alamat == "" && f.Telepon == ""
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// errorBody is the shape error responses may carry.
type errorBody struct {
	Message string `json:"message"`
}
