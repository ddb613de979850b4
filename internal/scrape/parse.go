package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

// Product card selectors for the listing fragment.
const (
	productCardSelector   = "div.col-lg-4.col-md-6.col-6"
	productLinkSelector   = `a[href*=".html"]`
	productNameSelector   = "h6"
	productButtonSelector = "button[data-product_id]"
	productImageSelector  = "img.img-fluid"
	productSizeSelector   = "label.badge.badge-primary"
	strikethroughClass    = "l-through"
)

// soldOutText is the call-to-action text marking an out-of-stock card.
const soldOutText = "sold out"

// pricePattern matches localized numeric text with thousands separators.
var pricePattern = regexp.MustCompile(`[\d,]+`)

// parseProductPage extracts product cards from one listing page
// fragment. Cards missing a link, name, or native id are dropped
// silently; a bad card never aborts the page.
func parseProductPage(fragment string, storeID, categoryID int64, log logger.Interface) []*domain.Product {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		log.Warn("failed to parse product page", "error", err)
		return nil
	}

	var products []*domain.Product
	doc.Find(productCardSelector).Each(func(_ int, card *goquery.Selection) {
		if product := parseProductCard(card, storeID, categoryID); product != nil {
			products = append(products, product)
		}
	})

	return products
}

// parseProductCard extracts one product from a card selection, or nil
// when a required field is missing.
func parseProductCard(card *goquery.Selection, storeID, categoryID int64) *domain.Product {
	link := card.Find(productLinkSelector).First()
	url, hasURL := link.Attr("href")
	url = strings.TrimSpace(url)
	if !hasURL || url == "" {
		return nil
	}

	name := strings.TrimSpace(card.Find(productNameSelector).First().Text())
	if name == "" {
		return nil
	}

	button := card.Find(productButtonSelector).First()
	productID, hasID := button.Attr("data-product_id")
	productID = strings.TrimSpace(productID)
	if !hasID || productID == "" {
		return nil
	}

	stockStatus := domain.StockStatusInStock
	if strings.EqualFold(strings.TrimSpace(button.Text()), soldOutText) {
		stockStatus = domain.StockStatusOutOfStock
	}

	imageURL := strings.TrimSpace(card.Find(productImageSelector).First().AttrOr("src", ""))
	price, originalPrice := parsePrices(card)
	size := strings.TrimSpace(card.Find(productSizeSelector).First().Text())

	return &domain.Product{
		StoreID:       storeID,
		CategoryID:    categoryID,
		ProductID:     productID,
		Name:          name,
		URL:           url,
		ImageURL:      imageURL,
		Price:         price,
		OriginalPrice: originalPrice,
		Size:          size,
		StockStatus:   stockStatus,
		IsActive:      true,
	}
}

// parsePrices scans the card's h6 elements for the current price
// (first plain h6 with digits) and the optional strikethrough original
// price. Thousands separators are stripped.
func parsePrices(card *goquery.Selection) (price float64, originalPrice *float64) {
	card.Find(productNameSelector).Each(func(_ int, sel *goquery.Selection) {
		match := pricePattern.FindString(sel.Text())
		if match == "" {
			return
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil {
			return
		}

		if sel.HasClass(strikethroughClass) {
			originalPrice = &value
			return
		}
		if price == 0 {
			price = value
		}
	})

	return price, originalPrice
}
