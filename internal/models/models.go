package models

// Record представляет одну связку короткого кода и оригинального URL.
// После сохранения в хранилище запись не изменяется.
type Record struct {
	ShortCode string `json:"short_code"`
	LongURL   string `json:"long_url"`
}

// Stats содержит диагностические счётчики хранилища.
// ShortBuckets и LongBuckets считают непустые корзины в соответствующем
// индексе, а не количество записей.
type Stats struct {
	ShortBuckets int `json:"short_buckets"`
	LongBuckets  int `json:"long_buckets"`
	Records      int `json:"records"`
}
