package models

import "testing"

func TestCartItemCountAndSubtotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Quantity: 2, ProductPrice: 599},
		{Quantity: 1, ProductPrice: 249.50},
	}}

	if got := cart.ItemCount(); got != 3 {
		t.Errorf("ItemCount = %d, want 3", got)
	}
	if got := cart.Subtotal(); got != 2*599+249.50 {
		t.Errorf("Subtotal = %v, want %v", got, 2*599+249.50)
	}

	empty := Cart{}
	if empty.ItemCount() != 0 || empty.Subtotal() != 0 {
		t.Errorf("empty cart should count 0 and total 0")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "returned", "Pending", "confirmed"} {
		if ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = true, want false", s)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{"stripe", "razorpay", "cod"} {
		if !ValidPaymentMethod(m) {
			t.Errorf("ValidPaymentMethod(%q) = false, want true", m)
		}
	}
	if ValidPaymentMethod("paypal") {
		t.Error("ValidPaymentMethod(paypal) = true, want false")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"Premium", "Standard", "Budget"} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("premium") {
		t.Error("category match must be exact")
	}
}

func TestShippingAddressComplete(t *testing.T) {
	addr := ShippingAddress{
		FullName: "Jane Doe", Street: "1 Main St", City: "Springfield",
		State: "IL", Zip: "62704", Phone: "555-0100",
	}
	if !addr.Complete() {
		t.Error("complete address reported incomplete")
	}

	addr.Zip = ""
	if addr.Complete() {
		t.Error("address without zip reported complete")
	}
}

func TestProductMainImage(t *testing.T) {
	p := Product{}
	if p.MainImage() != "" {
		t.Errorf("image-less product MainImage = %q, want empty", p.MainImage())
	}

	p.Images = []ProductImage{
		{Position: 0, URL: "first.jpg"},
		{Position: 1, URL: "second.jpg"},
	}
	if got := p.MainImage(); got != "first.jpg" {
		t.Errorf("MainImage = %q, want first.jpg", got)
	}
}
