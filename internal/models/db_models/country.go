package db_models

type Country struct {
	Name   string   `json:"name"`
	Code   string   `json:"code"`
	Cities []string `json:"cities"`
}
