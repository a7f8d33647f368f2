package generator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/business"
)

// The cart is modeled in Go and the emitted script.js is generated from the
// same catalog, so cart arithmetic can be exercised in tests without running
// JavaScript.

// CartLine is one cart entry: a product reference and its quantity.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is the in-session list of lines over a fixed price catalog.
type Cart struct {
	lines  []CartLine
	prices map[string]float64
}

// NewCart builds an empty cart over the record's product catalog. Product
// ids are catalog positions, matching the ids baked into script.js.
func NewCart(rec *business.Record) *Cart {
	prices := make(map[string]float64, len(rec.Products))
	for i, p := range rec.Products {
		prices[strconv.Itoa(i)] = p.Price
	}
	return &Cart{prices: prices}
}

// Add increments the quantity of an existing line or appends a new one.
// Unknown product ids are ignored.
func (c *Cart) Add(productID string) {
	if _, ok := c.prices[productID]; !ok {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: 1})
}

// SetQuantity updates a line's quantity. Anything below 1 removes the line,
// so quantities are never zero or negative.
func (c *Cart) SetQuantity(productID string, quantity int) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if quantity < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = quantity
		return
	}
}

// Lines returns a copy of the current line items.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is always the sum of price times quantity over the current lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += c.prices[l.ProductID] * float64(l.Quantity)
	}
	return total
}

// cartScript emits the client-side cart for the ecommerce variant. The
// catalog is embedded as JSON; the script's add/quantity/total rules mirror
// the Cart type above. Checkout is a terminal confirmation, no network.
func (c *pageContext) cartScript() string {
	type item struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	catalog := make([]item, 0, len(c.rec.Products))
	for i, p := range c.rec.Products {
		catalog = append(catalog, item{ID: strconv.Itoa(i), Name: p.Name, Price: p.Price})
	}
	encoded, _ := json.Marshal(catalog)

	var b strings.Builder
	b.WriteString("'use strict';\n\n")
	fmt.Fprintf(&b, "var CATALOG = %s;\n", string(encoded))
	fmt.Fprintf(&b, "var CURRENCY = '%s';\n\n", c.prices.symbol)
	b.WriteString(`var cart = [];

function findProduct(id) {
  for (var i = 0; i < CATALOG.length; i++) {
    if (CATALOG[i].id === id) { return CATALOG[i]; }
  }
  return null;
}

function cartAdd(id) {
  if (!findProduct(id)) { return; }
  for (var i = 0; i < cart.length; i++) {
    if (cart[i].productId === id) {
      cart[i].quantity += 1;
      renderCart();
      return;
    }
  }
  cart.push({ productId: id, quantity: 1 });
  renderCart();
}

function cartSetQuantity(id, quantity) {
  for (var i = 0; i < cart.length; i++) {
    if (cart[i].productId !== id) { continue; }
    if (quantity < 1) {
      cart.splice(i, 1);
    } else {
      cart[i].quantity = quantity;
    }
    renderCart();
    return;
  }
}

function cartTotal() {
  var total = 0;
  for (var i = 0; i < cart.length; i++) {
    var product = findProduct(cart[i].productId);
    total += product.price * cart[i].quantity;
  }
  return total;
}

function cartCheckout() {
  if (cart.length === 0) { return; }
  alert('Thank you for your order! Total: ' + CURRENCY + cartTotal().toFixed(2));
  cart = [];
  renderCart();
}

function renderCart() {
  var el = document.getElementById('cart-widget');
  if (!el) {
    el = document.createElement('div');
    el.id = 'cart-widget';
    el.className = 'cart-widget';
    document.body.appendChild(el);
  }
  if (cart.length === 0) {
    el.style.display = 'none';
    return;
  }
  el.style.display = 'block';
  var html = '<h3>Cart</h3>';
  for (var i = 0; i < cart.length; i++) {
    var product = findProduct(cart[i].productId);
    html += '<div class="line"><span>' + product.name + '</span>' +
      '<span><button onclick="cartSetQuantity(\'' + product.id + '\', ' + (cart[i].quantity - 1) + ')">-</button> ' +
      cart[i].quantity +
      ' <button onclick="cartSetQuantity(\'' + product.id + '\', ' + (cart[i].quantity + 1) + ')">+</button></span></div>';
  }
  html += '<div class="total">Total: ' + CURRENCY + cartTotal().toFixed(2) + '</div>';
  html += '<button class="button" onclick="cartCheckout()">Checkout</button>';
  el.innerHTML = html;
}
`)
	return b.String()
}
