// Package seed populates static reference data at startup.
package seed

import (
	"context"

	"github.com/mustafayildiz-m/iw-project/internal/repository"
	"github.com/mustafayildiz-m/iw-project/pkg/log"
)

type language struct {
	code string
	name string
}

var defaultLanguages = []language{
	{"tr", "Türkçe"},
	{"en", "İngilizce"},
	{"ar", "Arapça"},
	{"fa", "Farsça"},
	{"ur", "Urduca"},
	{"de", "Almanca"},
	{"fr", "Fransızca"},
	{"es", "İspanyolca"},
	{"it", "İtalyanca"},
	{"ru", "Rusça"},
	{"zh", "Çince"},
	{"ja", "Japonca"},
	{"ko", "Korece"},
	{"nl", "Hollandaca"},
	{"pt", "Portekizce"},
	{"sv", "İsveççe"},
	{"no", "Norveççe"},
	{"da", "Danca"},
	{"fi", "Fince"},
	{"el", "Yunanca"},
	{"he", "İbranice"},
	{"hi", "Hintçe"},
	{"bn", "Bengalce"},
	{"ta", "Tamilce"},
	{"th", "Tayca"},
	{"vi", "Vietnamca"},
	{"id", "Endonezyaca"},
	{"ms", "Malayca"},
	{"tl", "Tagalog"},
	{"sw", "Swahili"},
	{"kk", "Kazakça"},
	{"uz", "Özbekçe"},
	{"ky", "Kırgızca"},
	{"tk", "Türkmence"},
	{"az", "Azerbaycan Türkçesi"},
	{"tt", "Tatarca"},
	{"ba", "Başkurtça"},
	{"cv", "Çuvaşça"},
	{"sah", "Yakutça"},
	{"bua", "Buryatça"},
	{"xal", "Kalmıkça"},
	{"tyv", "Tuva Türkçesi"},
	{"kjh", "Hakasça"},
	{"alt", "Altayca"},
	{"cjs", "Şorca"},
	{"dlg", "Dolganca"},
	{"kim", "Tofalarca"},
	{"gag", "Gagavuzca"},
	{"kdr", "Karaimce"},
	{"crh", "Kırım Tatar Türkçesi"},
	{"krc", "Karaçay-Balkarca"},
	{"kum", "Kumukça"},
	{"nog", "Nogayca"},
	{"kaa", "Karakalpakça"},
	{"chg", "Çağatay Türkçesi"},
	{"ota", "Osmanlı Türkçesi"},
	{"otk", "Eski Türkçe"},
	{"ug", "Uygur Türkçesi"},
	{"slr", "Salarca"},
	{"ps", "Peştuca"},
	{"ha", "Hausa"},
	{"ig", "Igbo"},
	{"yo", "Yoruba"},
	{"lg", "Luganda"},
	{"rhg", "Rohingya"},
	{"ca", "Katalanca"},
}

// Languages inserts the language reference rows that are not present yet.
// Safe to run on every boot.
func Languages(ctx context.Context, repo repository.LanguageRepository) error {
	for _, l := range defaultLanguages {
		if err := repo.Ensure(ctx, l.code, l.name); err != nil {
			return err
		}
	}
	log.L().Info().Int("count", len(defaultLanguages)).Msg("language seed complete")
	return nil
}
