package app

import (
	"errors"
	"sort"
	"strings"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

// resolveFormat selects the format for this run and applies any ad-hoc
// symbol overrides on top of it. The returned name identifies the base
// format for display and for positioning the explorer cursor.
func (a *Application) resolveFormat() (numformat.Format, string, error) {
	base, name, err := a.baseFormat()
	if err != nil {
		return nil, "", err
	}
	if !a.Config.HasOverrides() {
		return base, name, nil
	}

	b := numformat.CustomFormatFrom(base).ToBuilder()
	if a.Config.GroupingSet {
		g, err := numformat.ParseGrouping(a.Config.GroupingName)
		if err != nil {
			return nil, "", err
		}
		b.Grouping(g)
	}
	if a.Config.SeparatorSet {
		b.Separator(a.Config.Separator)
	}
	if a.Config.DecimalSet {
		b.Decimal(a.Config.Decimal)
	}
	if a.Config.MinusSignSet {
		b.MinusSign(a.Config.MinusSign)
	}

	f, err := b.Build()
	if err != nil {
		return nil, "", err
	}
	return f, name, nil
}

// baseFormat picks the base format, highest precedence first: a named
// format from the config file, the operating system locale, an explicit
// locale flag, the config file's default locale, then en.
func (a *Application) baseFormat() (numformat.Format, string, error) {
	cfg := a.Config

	if cfg.FormatName != "" {
		f, ok := a.Named[cfg.FormatName]
		if !ok {
			if len(a.Named) == 0 {
				return nil, "", apperrors.NewConfigError("unknown format %q: no config file loaded (use --config)", cfg.FormatName)
			}
			return nil, "", apperrors.NewConfigError("unknown format %q (config file has: %s)",
				cfg.FormatName, strings.Join(a.namedNames(), ", "))
		}
		return f, cfg.FormatName, nil
	}

	if cfg.UseSystem {
		sys, err := numformat.CurrentSystemLocale()
		if err != nil {
			return nil, "", apperrors.WrapError(err, "reading the system locale")
		}
		return sys, sys.Name(), nil
	}

	if cfg.LocaleName != "" {
		loc, err := numformat.MatchLocale(cfg.LocaleName)
		if err != nil {
			return nil, "", err
		}
		return loc, loc.Name(), nil
	}

	if a.File != nil && a.File.DefaultLocale != "" {
		loc, err := numformat.MatchLocale(a.File.DefaultLocale)
		if err != nil {
			return nil, "", apperrors.WrapError(err, "config default_locale")
		}
		return loc, loc.Name(), nil
	}

	return numformat.LocaleEn, "en", nil
}

// namedNames returns the sorted names of the loaded custom formats.
func (a *Application) namedNames() []string {
	names := make([]string, 0, len(a.Named))
	for name := range a.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorCanceled
	}

	var inputErr apperrors.InputError
	if errors.As(err, &inputErr) {
		return apperrors.ExitErrorInput
	}

	if errors.Is(err, numformat.ErrUnknownLocale) || errors.Is(err, numformat.ErrProviderUnavailable) {
		return apperrors.ExitErrorLocale
	}

	var configErr apperrors.ConfigError
	var validationErr apperrors.ValidationError
	var symbolErr numformat.SymbolError
	if errors.As(err, &configErr) || errors.As(err, &validationErr) ||
		errors.As(err, &symbolErr) || errors.Is(err, numformat.ErrInvalidFormat) {
		return apperrors.ExitErrorConfig
	}

	return apperrors.ExitErrorGeneric
}
