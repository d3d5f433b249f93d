package repository

import (
	"iter"

	"github.com/tempizhere/urlmap/internal/models"
)

// DefaultHashSize задаёт количество корзин каждого индекса по умолчанию.
const DefaultHashSize = 1009

// hashSeed задаёт начальное значение хеша djb2.
const hashSeed = 5381

// nilHandle помечает конец цепочки и свободные корзины.
const nilHandle = -1

// entry представляет слот арены. Одна запись включена сразу в две цепочки: по хешу
// короткого кода и по хешу длинного URL. Ссылки хранятся как индексы арены,
// поэтому удвоения данных и двойного освобождения не возникает.
type entry struct {
	rec       models.Record
	nextShort int
	nextLong  int
}

// MemoryRepository реализует интерфейс Repository поверх арены записей и двух
// хеш-индексов фиксированного размера с цепочками коллизий. Размер индексов
// задаётся при создании и не меняется, поэтому его стоит выбирать исходя из
// ожидаемого числа записей.
type MemoryRepository struct {
	entries      []entry
	freeList     []int
	shortBuckets []int
	longBuckets  []int
	count        int
}

// NewMemoryRepository создаёт хранилище с заданным числом корзин в каждом
// индексе. Для hashSize <= 0 используется DefaultHashSize.
func NewMemoryRepository(hashSize int) *MemoryRepository {
	if hashSize <= 0 {
		hashSize = DefaultHashSize
	}
	r := &MemoryRepository{
		shortBuckets: make([]int, hashSize),
		longBuckets:  make([]int, hashSize),
	}
	for i := range r.shortBuckets {
		r.shortBuckets[i] = nilHandle
		r.longBuckets[i] = nilHandle
	}
	return r
}

// hashString считает хеш djb2 строки и приводит его к номеру корзины.
func (r *MemoryRepository) hashString(s string) int {
	h := uint64(hashSeed)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return int(h % uint64(len(r.shortBuckets)))
}

// findByCode возвращает handle записи с данным коротким кодом либо nilHandle.
func (r *MemoryRepository) findByCode(code string) int {
	for h := r.shortBuckets[r.hashString(code)]; h != nilHandle; h = r.entries[h].nextShort {
		if r.entries[h].rec.ShortCode == code {
			return h
		}
	}
	return nilHandle
}

// findByURL возвращает handle записи с данным длинным URL либо nilHandle.
func (r *MemoryRepository) findByURL(url string) int {
	for h := r.longBuckets[r.hashString(url)]; h != nilHandle; h = r.entries[h].nextLong {
		if r.entries[h].rec.LongURL == url {
			return h
		}
	}
	return nilHandle
}

// alloc выделяет слот арены: сначала из свободного списка, иначе ростом среза.
func (r *MemoryRepository) alloc() int {
	if n := len(r.freeList); n > 0 {
		h := r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		return h
	}
	r.entries = append(r.entries, entry{})
	return len(r.entries) - 1
}

// Save сохраняет запись и включает её в оба индекса. Возвращает ErrCodeExists
// при занятом коротком коде и ErrURLExists при уже связанном длинном URL;
// в обоих случаях хранилище не изменяется.
func (r *MemoryRepository) Save(rec models.Record) error {
	if r.findByCode(rec.ShortCode) != nilHandle {
		return ErrCodeExists
	}
	if r.findByURL(rec.LongURL) != nilHandle {
		return ErrURLExists
	}

	h := r.alloc()
	hs := r.hashString(rec.ShortCode)
	hl := r.hashString(rec.LongURL)
	r.entries[h] = entry{
		rec:       rec,
		nextShort: r.shortBuckets[hs],
		nextLong:  r.longBuckets[hl],
	}
	// вставка в голову обеих цепочек
	r.shortBuckets[hs] = h
	r.longBuckets[hl] = h
	r.count++
	return nil
}

// GetByCode возвращает запись по короткому коду.
func (r *MemoryRepository) GetByCode(code string) (models.Record, bool) {
	h := r.findByCode(code)
	if h == nilHandle {
		return models.Record{}, false
	}
	return r.entries[h].rec, true
}

// GetByURL возвращает запись по длинному URL.
func (r *MemoryRepository) GetByURL(url string) (models.Record, bool) {
	h := r.findByURL(url)
	if h == nilHandle {
		return models.Record{}, false
	}
	return r.entries[h].rec, true
}

// unlinkShort исключает handle из цепочки индекса коротких кодов.
func (r *MemoryRepository) unlinkShort(h int) {
	b := r.hashString(r.entries[h].rec.ShortCode)
	if r.shortBuckets[b] == h {
		r.shortBuckets[b] = r.entries[h].nextShort
		return
	}
	for cur := r.shortBuckets[b]; cur != nilHandle; cur = r.entries[cur].nextShort {
		if r.entries[cur].nextShort == h {
			r.entries[cur].nextShort = r.entries[h].nextShort
			return
		}
	}
}

// unlinkLong исключает handle из цепочки индекса длинных URL.
func (r *MemoryRepository) unlinkLong(h int) {
	b := r.hashString(r.entries[h].rec.LongURL)
	if r.longBuckets[b] == h {
		r.longBuckets[b] = r.entries[h].nextLong
		return
	}
	for cur := r.longBuckets[b]; cur != nilHandle; cur = r.entries[cur].nextLong {
		if r.entries[cur].nextLong == h {
			r.entries[cur].nextLong = r.entries[h].nextLong
			return
		}
	}
}

// remove исключает запись из обеих цепочек и возвращает слот в свободный
// список. После возврата ни один индекс не ссылается на слот.
func (r *MemoryRepository) remove(h int) {
	r.unlinkShort(h)
	r.unlinkLong(h)
	r.entries[h] = entry{nextShort: nilHandle, nextLong: nilHandle}
	r.freeList = append(r.freeList, h)
	r.count--
}

// DeleteByCode удаляет запись по короткому коду из обоих индексов.
// Возвращает false, если код не найден.
func (r *MemoryRepository) DeleteByCode(code string) bool {
	h := r.findByCode(code)
	if h == nilHandle {
		return false
	}
	r.remove(h)
	return true
}

// DeleteByURL удаляет запись по длинному URL из обоих индексов.
// Возвращает false, если URL не найден.
func (r *MemoryRepository) DeleteByURL(url string) bool {
	h := r.findByURL(url)
	if h == nilHandle {
		return false
	}
	r.remove(h)
	return true
}

// All перечисляет пары (короткий код, длинный URL) обходом корзин индекса
// коротких кодов. Последовательность конечна и допускает повторный обход;
// порядок определяется раскладкой по корзинам.
func (r *MemoryRepository) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, head := range r.shortBuckets {
			for h := head; h != nilHandle; h = r.entries[h].nextShort {
				if !yield(r.entries[h].rec.ShortCode, r.entries[h].rec.LongURL) {
					return
				}
			}
		}
	}
}

// Stats возвращает число непустых корзин каждого индекса и число записей.
func (r *MemoryRepository) Stats() models.Stats {
	st := models.Stats{Records: r.count}
	for i := range r.shortBuckets {
		if r.shortBuckets[i] != nilHandle {
			st.ShortBuckets++
		}
		if r.longBuckets[i] != nilHandle {
			st.LongBuckets++
		}
	}
	return st
}

// Len возвращает количество живых записей.
func (r *MemoryRepository) Len() int {
	return r.count
}

// Clear очищает хранилище, сохраняя размер индексов.
func (r *MemoryRepository) Clear() {
	r.entries = nil
	r.freeList = nil
	r.count = 0
	for i := range r.shortBuckets {
		r.shortBuckets[i] = nilHandle
		r.longBuckets[i] = nilHandle
	}
}
