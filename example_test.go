package numformat_test

import (
	"fmt"
	"math/big"

	numformat "github.com/anacrolix/num-format"
)

func ExampleFormatInt() {
	fmt.Println(numformat.FormatInt(1000000, numformat.LocaleEn))
	fmt.Println(numformat.FormatInt(1000000, numformat.LocaleDe))
	fmt.Println(numformat.FormatInt(1000000, numformat.LocaleHi))
	// Output:
	// 1,000,000
	// 1.000.000
	// 10,00,000
}

func ExampleBuffer() {
	var b numformat.Buffer
	for _, v := range []int64{42, -1234567} {
		b.WriteInt(v, numformat.LocaleEn)
		fmt.Println(b.String())
	}
	// Output:
	// 42
	// -1,234,567
}

func ExampleBuffer_WriteIntSigned() {
	var b numformat.Buffer
	b.WriteIntSigned(1234567, numformat.LocaleEn)
	fmt.Println(b.String())
	b.WriteIntSigned(0, numformat.LocaleEn)
	fmt.Println(b.String())
	// Output:
	// +1,234,567
	// 0
}

func ExampleCustomFormatBuilder() {
	f, err := numformat.NewCustomFormatBuilder().
		Separator("_").
		Grouping(numformat.GroupingStandard).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(numformat.FormatInt(-1234567, f))
	// Output:
	// -1_234_567
}

func ExampleCustomFormat_ToBuilder() {
	base := numformat.CustomFormatFrom(numformat.LocaleEn)
	flat, err := base.ToBuilder().Grouping(numformat.GroupingPosix).Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(numformat.FormatInt(1234567, flat))
	// Output:
	// 1234567
}

func ExampleMatchLocale() {
	loc, err := numformat.MatchLocale("en_US.UTF-8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(loc.Name())
	fmt.Println(numformat.FormatInt(9876543, loc))
	// Output:
	// en
	// 9,876,543
}

func ExampleFormatBig() {
	x, _ := new(big.Int).SetString("123456789123456789123456789", 10)
	fmt.Println(numformat.FormatBig(x, numformat.LocaleEn))
	// Output:
	// 123,456,789,123,456,789,123,456,789
}
