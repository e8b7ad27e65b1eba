package numformat

// localeEntry is one row of the built-in locale table. Accessors wrap the
// raw strings in the bounded symbol types directly; the table test pushes
// every row through the checked constructors, so malformed data fails the
// build's test run rather than a user's format call.
type localeEntry struct {
	name string
	dec  string
	grp  Grouping
	inf  string
	min  string
	nan  string
	plus string
	sep  string
}

// localeTable holds CLDR-derived number symbols for every built-in
// locale. Noteworthy non-ASCII values: U+00A0 (no-break space) and
// U+202F (narrow no-break space) separators, the U+2212 minus sign of
// several Nordic and Baltic locales, the Arabic separators U+066B/U+066C,
// and the U+061C/U+200E direction marks carried by RTL sign symbols.
var localeTable = [numLocales]localeEntry{
	LocaleC:      {name: "C", dec: ".", grp: GroupingPosix, inf: "inf", min: "-", nan: "NaN", plus: "+", sep: ""},
	LocaleAr:     {name: "ar", dec: "٫", grp: GroupingStandard, inf: "∞", min: "؜-", nan: "NaN", plus: "؜+", sep: "٬"},
	LocaleBg:     {name: "bg", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleBn:     {name: "bn", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleCs:     {name: "cs", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleDa:     {name: "da", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleDe:     {name: "de", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleEl:     {name: "el", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleEn:     {name: "en", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleEnIN:   {name: "en-IN", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleEs:     {name: "es", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleEt:     {name: "et", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "NaN", plus: "+", sep: " "},
	LocaleFa:     {name: "fa", dec: "٫", grp: GroupingStandard, inf: "∞", min: "‎−", nan: "NaN", plus: "‎+", sep: "٬"},
	LocaleFi:     {name: "fi", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "epäluku", plus: "+", sep: " "},
	LocaleFr:     {name: "fr", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleGu:     {name: "gu", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleHe:     {name: "he", dec: ".", grp: GroupingStandard, inf: "∞", min: "‎-", nan: "NaN", plus: "‎+", sep: ","},
	LocaleHi:     {name: "hi", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleHr:     {name: "hr", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "NaN", plus: "+", sep: "."},
	LocaleHu:     {name: "hu", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleId:     {name: "id", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleIt:     {name: "it", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleJa:     {name: "ja", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleKn:     {name: "kn", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleKo:     {name: "ko", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleLt:     {name: "lt", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "NaN", plus: "+", sep: " "},
	LocaleLv:     {name: "lv", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleMr:     {name: "mr", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleNb:     {name: "nb", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "NaN", plus: "+", sep: " "},
	LocaleNl:     {name: "nl", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocalePl:     {name: "pl", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocalePt:     {name: "pt", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocalePtPT:   {name: "pt-PT", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleRo:     {name: "ro", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleRu:     {name: "ru", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "не число", plus: "+", sep: " "},
	LocaleSk:     {name: "sk", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleSl:     {name: "sl", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleSr:     {name: "sr", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleSv:     {name: "sv", dec: ",", grp: GroupingStandard, inf: "∞", min: "−", nan: "NaN", plus: "+", sep: " "},
	LocaleSw:     {name: "sw", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleTa:     {name: "ta", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleTe:     {name: "te", dec: ".", grp: GroupingIndian, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleTh:     {name: "th", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleTr:     {name: "tr", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleUk:     {name: "uk", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: " "},
	LocaleUr:     {name: "ur", dec: ".", grp: GroupingStandard, inf: "∞", min: "‎-", nan: "NaN", plus: "‎+", sep: ","},
	LocaleVi:     {name: "vi", dec: ",", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: "."},
	LocaleZh:     {name: "zh", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "NaN", plus: "+", sep: ","},
	LocaleZhHant: {name: "zh-Hant", dec: ".", grp: GroupingStandard, inf: "∞", min: "-", nan: "非數值", plus: "+", sep: ","},
}
