package domain

const DefaultPageSize = 20

type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// TableQuery contém os parâmetros de busca, ordenação e paginação da tabela
type TableQuery struct {
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
	SearchQuery string
}

type TablePage struct {
	Data       []EventRecord `json:"data"`
	Pagination Pagination    `json:"pagination"`
}
