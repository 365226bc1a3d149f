package domain

import (
	"net/url"
	"strings"
)

// Marketplace is the platform inferred from a product link's domain. It only
// informs the CTA directive when the request asks for a marketplace-matched
// call to action.
type Marketplace string

const (
	MarketplaceShopee    Marketplace = "Shopee"
	MarketplaceTokopedia Marketplace = "Tokopedia"
	MarketplaceTikTok    Marketplace = "TikTok"
	MarketplaceInstagram Marketplace = "Instagram"
	MarketplaceLynkID    Marketplace = "Lynk.id"
	MarketplaceUnknown   Marketplace = ""
)

var marketplaceDomains = map[string]Marketplace{
	"shopee.co.id":   MarketplaceShopee,
	"shopee.com":     MarketplaceShopee,
	"tokopedia.com":  MarketplaceTokopedia,
	"tokopedia.link": MarketplaceTokopedia,
	"tiktok.com":     MarketplaceTikTok,
	"instagram.com":  MarketplaceInstagram,
	"lynk.id":        MarketplaceLynkID,
}

// DetectMarketplace maps the link's host to a known platform. Unknown hosts
// return MarketplaceUnknown; the generator then leaves the inference fully to
// the provider.
func DetectMarketplace(link string) Marketplace {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return MarketplaceUnknown
	}
	host := strings.ToLower(u.Hostname())
	for domain, m := range marketplaceDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return m
		}
	}
	return MarketplaceUnknown
}

// CTACategory returns the CTA intent that fits the platform: checkout-style
// for e-commerce, link-click for social and link-in-bio platforms.
func (m Marketplace) CTACategory() CTAType {
	switch m {
	case MarketplaceShopee, MarketplaceTokopedia:
		return CTABeliCheckout
	case MarketplaceTikTok, MarketplaceInstagram, MarketplaceLynkID:
		return CTAKlikLink
	default:
		return CTAKlikLink
	}
}

// CTAExample returns sample phrasing for the platform's CTA category, folded
// into the instruction so generated text sounds native to the platform.
func (m Marketplace) CTAExample() string {
	switch m {
	case MarketplaceShopee:
		return "Checkout sekarang di Shopee sebelum kehabisan!"
	case MarketplaceTokopedia:
		return "Langsung checkout di Tokopedia, ya!"
	case MarketplaceTikTok:
		return "Klik keranjang kuning sekarang!"
	case MarketplaceInstagram:
		return "Klik link di bio untuk info lengkapnya!"
	case MarketplaceLynkID:
		return "Klik link-nya dan dapatkan sekarang!"
	default:
		return "Klik link di deskripsi untuk info lengkapnya!"
	}
}
