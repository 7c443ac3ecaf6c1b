package paint_test

import (
	"errors"
	"math/rand"
	"slices"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/blissart/internal/paint"
)

var _ = Describe("Painter", func() {
	DescribeTable("produces exactly height rows of width runes",
		func(style paint.Style, width, height int) {
			canvas, err := paint.New(style, rand.New(rand.NewSource(7))).Paint(width, height)
			Expect(err).NotTo(HaveOccurred())
			Expect(canvas.Rows).To(HaveLen(height))
			Expect(canvas.Bands).To(HaveLen(height))
			for _, line := range canvas.Lines() {
				Expect(utf8.RuneCountInString(line)).To(Equal(width))
			}
		},
		Entry("textured 1x1", paint.Textured{}, 1, 1),
		Entry("textured wallpaper", paint.Textured{}, 200, 50),
		Entry("textured narrow", paint.Textured{}, 3, 97),
		Entry("simple 1x1", paint.Simple{}, 1, 1),
		Entry("simple wallpaper", paint.Simple{}, 160, 40),
		Entry("simple wide", paint.Simple{}, 333, 17),
	)

	DescribeTable("rejects non-positive dimensions",
		func(width, height int) {
			_, err := paint.New(paint.Simple{}, nil).Paint(width, height)
			Expect(errors.Is(err, paint.ErrInvalidArgument)).To(BeTrue())

			var dimErr *paint.DimensionError
			Expect(errors.As(err, &dimErr)).To(BeTrue())
			Expect(dimErr.Width).To(Equal(width))
			Expect(dimErr.Height).To(Equal(height))
		},
		Entry("zero width", 0, 10),
		Entry("zero height", 10, 0),
		Entry("negative width", -4, 10),
		Entry("negative height", 10, -1),
	)

	It("keeps every rune inside its band charset", func() {
		for _, style := range []paint.Style{paint.Textured{}, paint.Simple{}} {
			canvas, err := paint.New(style, rand.New(rand.NewSource(99))).Paint(120, 40)
			Expect(err).NotTo(HaveOccurred())
			for y, row := range canvas.Rows {
				allowed := style.Charset(canvas.Bands[y])
				for _, r := range row {
					Expect(slices.Contains(allowed, r)).To(BeTrue(),
						"style %s row %d band %s: %q not allowed", style.Name(), y, canvas.Bands[y], r)
				}
			}
		}
	})

	Context("simple style", func() {
		It("is byte-identical across runs and sources", func() {
			a, err := paint.New(paint.Simple{}, rand.New(rand.NewSource(1))).Paint(160, 40)
			Expect(err).NotTo(HaveOccurred())
			b, err := paint.New(paint.Simple{}, rand.New(rand.NewSource(2))).Paint(160, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.String()).To(Equal(b.String()))
		})

		It("paints the 10x10 reference grid", func() {
			canvas, err := paint.New(paint.Simple{}, nil).Paint(10, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(canvas.Bands[:3]).To(HaveEach(paint.BandSky))
			Expect(canvas.Bands[3]).To(Equal(paint.BandCloud))
			Expect(canvas.Bands[4:]).To(HaveEach(paint.BandHill))

			lines := canvas.Lines()
			Expect(lines[0]).To(Equal(".         "))
			Expect(lines[1]).To(Equal("          "))
			Expect(lines[2]).To(Equal("         ."))
			for _, line := range lines[3:] {
				Expect(line).To(Equal("          "))
			}
		})

		It("shades the hills below the horizon", func() {
			canvas, err := paint.New(paint.Simple{}, nil).Paint(30, 20)
			Expect(err).NotTo(HaveOccurred())
			lines := canvas.Lines()
			Expect(lines[0]).To(Equal(".                      .      "))
			Expect(lines[18]).To(Equal("..............:::::;;;;;;;;###"))
			Expect(lines[19]).To(Equal("............::::::;;;;;;;;####"))
		})
	})

	Context("textured style", func() {
		It("reproduces the same canvas for the same seed", func() {
			a, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(42))).Paint(200, 50)
			Expect(err).NotTo(HaveOccurred())
			b, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(42))).Paint(200, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.String()).To(Equal(b.String()))
		})

		It("keeps the band structure across seeds", func() {
			a, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(1))).Paint(80, 30)
			Expect(err).NotTo(HaveOccurred())
			b, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(2))).Paint(80, 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Bands).To(Equal(b.Bands))

			// Hill rows do not sample, so they match even across seeds.
			for y := range a.Rows {
				if a.Bands[y] == paint.BandUpperHill || a.Bands[y] == paint.BandLowerHill {
					Expect(string(a.Rows[y])).To(Equal(string(b.Rows[y])))
				}
			}
		})

		It("scatters stars sparsely", func() {
			canvas, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(5))).Paint(200, 50)
			Expect(err).NotTo(HaveOccurred())
			stars, cells := 0, 0
			for y, row := range canvas.Rows {
				if canvas.Bands[y] != paint.BandSky {
					continue
				}
				for _, r := range row {
					cells++
					if r != ' ' {
						stars++
					}
				}
			}
			Expect(float64(stars) / float64(cells)).To(BeNumerically("~", 0.05, 0.02))
		})
	})

	Context("textured hill reference rows", func() {
		DescribeTable("matches the reference shading",
			func(width, height int, want map[int]string) {
				// Hill rows do not sample, so any seed yields the same rows.
				canvas, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(11))).Paint(width, height)
				Expect(err).NotTo(HaveOccurred())
				lines := canvas.Lines()
				for y, row := range want {
					Expect(lines[y]).To(Equal(row), "row %d", y)
				}
			},
			Entry("37x11", 37, 11, map[int]string{
				5:  `;;;//;;..      ..::::::::::.::..     `,
				6:  `\||##|\\/::::;;\\\\|||\\\\\\\\//;;::;`,
				7:  `\\|\\||\////////////\||;,;;;|\\\\\|||`,
				8:  `||||;;;|\\////////\|;''"#"'',;;|||||;`,
				9:  `|\|;||;|||\//////\|;'######"',;;||;|;`,
				10: `;;;,;;,,,,;|||||;;'"#########",;;;;;;`,
			}),
			Entry("200x50", 200, 50, map[int]string{
				20: `         . .                   ::::..                 ..::.             ...                   ::::..                 ..::.              .                   .::::..                ..:::.              .`,
				26: `:::;;//||||\/;;;:::;;;;///////\\|\///;::::::///\|\\////////;;:::::;//\||||\/;;;:::;;;/;/;////\\|\//;;:::::;///\\\\////////;;:::::;//|||||\/;;::::;;;/;/;///\\\|\//;;:::::;///\\\/////////;;::::;;//||||\`,
				29: `\\\||#######||//////\|#############|\//////||#######|\\\\/\\\\/\\\|#######||\//////||############||\//////||#######|\\\\\\\\\\\\\|#######||///////||############||///////||#######|\\\\\\\\/\|\\|#######`,
				30: `;|\/////////////\|\////\\\|;,',;;\/////////////\|\/\\/\\\|;;,,,;|\/////////////\|\\//\\\|;;,',;;\/////////////\|\/\\/\\\|;;,,,;|\////////////\\\/\//\\\|;;,,,;|\/////////////\|\/\\/\\\|;,',,;|\////////`,
				40: `\;'''""'',,,,,'''"'',,|////////\;'''""'"',,,,''''''',|\///////\|,''""""',,,,,"''"'',|\///////\\;'''""'"',,,,''''''',|\///////\;,''"''"',,,,''''''',|\///////\\;'''""'"',,,,''""'',,|////////\;,''""'"',,`,
				49: `########"';;|\\\\;,'####################",;|\\\\;,'####################"';;|\\\\;''###################"';;|\\\\;,'####################",;;|\\\\;'"###################"';;|\\\\;,'####################",;`,
			}),
		)
	})

	It("fails without a style", func() {
		_, err := paint.New(nil, nil).Paint(10, 10)
		Expect(err).To(MatchError(paint.ErrInvalidArgument))
	})
})

var _ = Describe("FromLines", func() {
	It("restores a painted canvas", func() {
		painted, err := paint.New(paint.Textured{}, rand.New(rand.NewSource(3))).Paint(40, 12)
		Expect(err).NotTo(HaveOccurred())

		restored, err := paint.FromLines(paint.Textured{}, painted.Lines())
		Expect(err).NotTo(HaveOccurred())
		Expect(restored.Width).To(Equal(40))
		Expect(restored.Height).To(Equal(12))
		Expect(restored.Bands).To(Equal(painted.Bands))
		Expect(restored.String()).To(Equal(painted.String()))
	})

	It("hands out row copies that leave the canvas untouched", func() {
		c, err := paint.FromLines(paint.Simple{}, []string{"ab", "cd"})
		Expect(err).NotTo(HaveOccurred())

		lines := c.Lines()
		lines[0] = "zz"
		Expect(c.Lines()).To(Equal([]string{"ab", "cd"}))
		Expect(c.String()).To(Equal("ab\ncd"))
	})

	It("pads ragged rows", func() {
		c, err := paint.FromLines(paint.Simple{}, []string{"ab", "abcd", ""})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Lines()).To(Equal([]string{"ab  ", "abcd", "    "}))
	})

	It("rejects empty input", func() {
		_, err := paint.FromLines(paint.Simple{}, nil)
		Expect(err).To(MatchError(paint.ErrInvalidArgument))
		_, err = paint.FromLines(paint.Simple{}, []string{"", ""})
		Expect(errors.Is(err, paint.ErrInvalidArgument)).To(BeTrue())
	})
})
