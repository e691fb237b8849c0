package entity

// StockAlert es una vista derivada, nunca persistida: se recalcula sobre la
// lista de productos en cada lectura. Un producto genera alerta cuando su
// stock actual es menor o igual a su stock mínimo.
type StockAlert struct {
	Product      Product
	CurrentStock int
	MinStock     int
	Difference   int // MinStock - CurrentStock
}
