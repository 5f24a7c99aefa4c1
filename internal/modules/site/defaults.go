package site

import (
	"html/template"

	"github.com/georgemunganga/shopfront/internal/modules/settings"
)

// DefaultBrandColor is used when brand_color is missing or unreadable.
const DefaultBrandColor = "#D4A574"

// DefaultFont is the font family used when font_family is not in the font
// table.
const DefaultFont = "Noto Sans JP"

// fonts maps the selectable font families to their CSS font stacks.
var fonts = map[string]string{
	"Noto Sans JP":      "'Noto Sans JP', sans-serif",
	"Noto Serif JP":     "'Noto Serif JP', serif",
	"M PLUS Rounded 1c": "'M PLUS Rounded 1c', sans-serif",
	"Kiwi Maru":         "'Kiwi Maru', serif",
	"Yomogi":            "'Yomogi', cursive",
	"Hachi Maru Pop":    "'Hachi Maru Pop', cursive",
	"Dela Gothic One":   "'Dela Gothic One', cursive",
	"Potta One":         "'Potta One', cursive",
}

// Fonts lists the selectable font families.
func Fonts() []string {
	return []string{
		"Noto Sans JP", "Noto Serif JP", "M PLUS Rounded 1c", "Kiwi Maru",
		"Yomogi", "Hachi Maru Pop", "Dela Gothic One", "Potta One",
	}
}

// resolveFont returns a known family and its CSS stack.
func resolveFont(family string) (string, template.CSS) {
	stack, ok := fonts[family]
	if !ok {
		family, stack = DefaultFont, fonts[DefaultFont]
	}
	return family, template.CSS(stack)
}

// Defaults returns a fresh copy of the built-in site content. Persisted
// settings and unsaved edits are merged over it.
func Defaults() settings.Settings {
	return settings.Settings{
		"shop_name":        "Tu&Ran",
		"tagline":          "日常の幸せベイキング",
		"meta_description": "大阪のバスクチーズケーキ専門店",
		"brand_color":      DefaultBrandColor,
		"font_family":      DefaultFont,

		"nav_item1":      "私たちについて",
		"nav_item1_link": "#about",
		"nav_item2":      "メニュー",
		"nav_item2_link": "#menu",
		"nav_item3":      "お問い合わせ",
		"nav_item3_link": "#contact",
		"nav_btn_text":   "ご予約",
		"nav_btn_link":   "#contact",

		"show_hero":      true,
		"hero_badge":     "毎日焼きたて",
		"hero_title":     "日常の幸せベイキング",
		"hero_desc":      "私たちは一つ一つのスイーツに心を込めて作っています。",
		"hero_btn1_text": "メニューを見る",
		"hero_btn1_link": "#menu",
		"hero_btn2_text": "詳しく見る",
		"hero_btn2_link": "#about",
		"rating_score":   "4.9",
		"rating_label":   "高評価",
		"rating_count":   "500+ レビュー",

		"show_products":     true,
		"products_title":    "おすすめメニュー",
		"products_subtitle": "厳選素材と職人技で作り上げた自慢の一品",

		"show_about":   true,
		"about_title":  "私たちの想い",
		"about_text1":  "当店の店長は日本で暮らす中国人です。",
		"about_text2":  "100%高品質の輸入クリームチーズのみを使用。",
		"stat1_number": "100%",
		"stat1_label":  "良心食材",
		"stat2_number": "毎日",
		"stat2_label":  "焼きたて",
		"stat3_number": "心込",
		"stat3_label":  "手作り",

		"show_contact":     true,
		"contact_title":    "ご来店お待ちしております",
		"contact_subtitle": "皆様との出会いを",
		"address_label":    "店舗住所",
		"address":          "大阪市中央区",
		"hours_label":      "営業時間",
		"hours":            "11:00-19:00",
		"phone_label":      "お問い合わせ",
		"phone":            "@turan.osaka",

		"show_footer":      true,
		"footer_text":      "All Rights Reserved.",
		"social_instagram": "https://www.instagram.com/turan.osaka/",
		"social_line":      "",
	}
}
