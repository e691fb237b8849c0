package entity

// Category agrupa productos por nombre. Se crea de forma perezosa al escribir
// un producto (upsert por nombre contra un índice único).
type Category struct {
	ID   string
	Name string
}
