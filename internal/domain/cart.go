package domain

// LineVariant описывает выбранный вариант товара в строке корзины.
// Цена варианта имеет приоритет над базовой ценой строки.
type LineVariant struct {
	ID         string
	Name       string
	PriceCents int64
}

// LineItem — одна строка корзины: товар (и опциональный вариант) плюс количество.
type LineItem struct {
	ID         string
	ProductID  string
	Title      string
	PriceCents int64
	Quantity   int
	Image      string
	Variant    *LineVariant
}

// UnitPriceCents возвращает цену за единицу с учетом варианта.
func (l *LineItem) UnitPriceCents() int64 {
	if l.Variant != nil {
		return l.Variant.PriceCents
	}
	return l.PriceCents
}

// LineID детерминированно выводит идентификатор строки из товара и варианта.
// Один и тот же товар с одним и тем же вариантом всегда попадает в одну строку.
func LineID(productID string, variant *LineVariant) string {
	if variant == nil {
		return productID
	}
	return productID + "-" + variant.ID
}

// Cart хранит строки корзины и признак открытости панели корзины.
// IsOpen — чисто UI-флаг, он не попадает в сохраняемое состояние.
type Cart struct {
	Items  []LineItem
	IsOpen bool
}

func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// AddItem добавляет строку в корзину. Если строка с той же парой товар+вариант
// уже есть, количества складываются, а отображаемые поля (название, цена,
// картинка) остаются от первого добавления. Новая строка встает в конец.
// Неположительное итоговое количество трактуется как удаление строки.
func (c *Cart) AddItem(item LineItem) {
	item.ID = LineID(item.ProductID, item.Variant)

	for i, existing := range c.Items {
		if existing.ID == item.ID {
			c.setQuantity(i, existing.Quantity+item.Quantity)
			return
		}
	}

	if item.Quantity <= 0 {
		return
	}

	c.Items = append(c.Items, item)
}

// RemoveItem удаляет строку по идентификатору. Отсутствующая строка — no-op.
func (c *Cart) RemoveItem(lineID string) {
	for i, item := range c.Items {
		if item.ID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity заменяет количество в строке, не трогая остальные поля.
// Количество <= 0 эквивалентно удалению строки. Отсутствующая строка — no-op.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	for i, item := range c.Items {
		if item.ID == lineID {
			c.setQuantity(i, quantity)
			return
		}
	}
}

// Clear полностью опустошает корзину.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

func (c *Cart) Open()   { c.IsOpen = true }
func (c *Cart) Close()  { c.IsOpen = false }
func (c *Cart) Toggle() { c.IsOpen = !c.IsOpen }

// TotalItems возвращает суммарное количество единиц товара во всех строках
// (не число различных строк).
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPriceCents возвращает сумму по всем строкам: цена единицы × количество.
// Валюты строк не приводятся друг к другу — подразумевается одна валюта.
func (c *Cart) TotalPriceCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPriceCents() * int64(item.Quantity)
	}
	return total
}

// setQuantity выставляет количество строки i, удаляя строку при количестве <= 0.
// Инвариант: в корзине не существует строк с неположительным количеством.
func (c *Cart) setQuantity(i, quantity int) {
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = quantity
}
