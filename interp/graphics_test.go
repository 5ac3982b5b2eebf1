package interp

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/twoq/display"
	tqio "github.com/ezrec/twoq/io"
	"github.com/ezrec/twoq/program"
)

var _ = Describe("Graphics", func() {
	var (
		mockCtrl    *gomock.Controller
		mockSurface *MockSurface
		created     []string
		out         *tqio.Capture
	)

	load := func(lines ...string) (m *Machine) {
		m = NewMachine(program.FromLines(lines))
		m.Output = out
		m.NewSurface = func(width, height int, title string) (display.Surface, error) {
			created = append(created, title)
			Expect(width).To(Equal(320))
			Expect(height).To(Equal(200))
			return mockSurface, nil
		}
		return
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockSurface = NewMockSurface(mockCtrl)
		created = nil
		out = &tqio.Capture{}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should create the window once", func() {
		m := load("_F", "WC 320 200 demo", "WC 320 200 again")

		mockSurface.EXPECT().SetShowFps(true).Times(2)

		Expect(m.Run()).To(Succeed())
		Expect(created).To(Equal([]string{"demo"}))
		Expect(m.Surface).To(BeIdenticalTo(mockSurface))
	})

	It("should forward frame control", func() {
		m := load("WC 320 200 demo", "WFPS 30", "WU", "WR")

		gomock.InOrder(
			mockSurface.EXPECT().SetShowFps(false),
			mockSurface.EXPECT().SetFrameRateCap(30).Return(nil),
			mockSurface.EXPECT().Update(),
			mockSurface.EXPECT().Render().Return(nil),
		)

		Expect(m.Run()).To(Succeed())
	})

	It("should draw pixels and rectangles", func() {
		m := load("WC 320 200 demo",
			"SCS 1 2 -16776961",
			"#WRECT 0 0 10 20",
			"#WRECTC 5 6 7 8 255",
		)

		mockSurface.EXPECT().SetShowFps(false)
		mockSurface.EXPECT().SetPixel(1, 2, int32(-16776961)).Return(nil)
		mockSurface.EXPECT().DrawRect(0, 0, 10, 20, int32(0)).Return(nil)
		mockSurface.EXPECT().DrawRect(5, 6, 7, 8, int32(255)).Return(nil)

		Expect(m.Run()).To(Succeed())
	})

	It("should store the colour of a pixel", func() {
		m := load("WC 320 200 demo", "GCS 3 4 ]", "~r")

		mockSurface.EXPECT().SetShowFps(false)
		mockSurface.EXPECT().Pixel(3, 4).Return(int32(-65536), nil)

		Expect(m.Run()).To(Succeed())
		Expect(out.Texts()).To(Equal([]string{"[-65536]"}))
	})

	It("should halt forever", func() {
		m := load("WC 320 200 demo", "WNL", "~ unreachable")

		mockSurface.EXPECT().SetShowFps(false)
		mockSurface.EXPECT().HaltForever()

		Expect(m.Run()).To(Succeed())
		Expect(m.Halted).To(BeTrue())
		Expect(m.Done()).To(BeTrue())
		Expect(out.Texts()).To(BeEmpty())

		done, err := m.Tick()
		Expect(done).To(BeTrue())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should fault on surface errors", func() {
		m := load("WC 320 200 demo", "SCS 999 0 1")

		mockSurface.EXPECT().SetShowFps(false)
		mockSurface.EXPECT().SetPixel(999, 0, int32(1)).Return(display.ErrOutOfBounds)

		err := m.Run()
		Expect(err).To(MatchError(display.ErrOutOfBounds))
		Expect(errors.Is(err, ErrGraphics)).To(BeTrue())
	})

	DescribeTable("should fault before the window exists",
		func(line string) {
			m := load(line)
			err := m.Run()
			Expect(err).To(MatchError(ErrSurfaceMissing))
			Expect(created).To(BeEmpty())
		},
		Entry("render", "WR"),
		Entry("update", "WU"),
		Entry("halt", "WNL"),
		Entry("frame rate", "WFPS 30"),
		Entry("get pixel", "GCS 0 0 ]"),
		Entry("set pixel", "SCS 0 0 0"),
		Entry("rectangle", "#WRECT 0 0 1 1"),
		Entry("coloured rectangle", "#WRECTC 0 0 1 1 1"),
	)

	It("should report a failed window", func() {
		m := NewMachine(program.FromLines([]string{"WC 1 1 x", "WR"}))
		m.NewSurface = func(int, int, string) (display.Surface, error) {
			return nil, display.ErrSize
		}

		err := m.Run()
		Expect(err).To(MatchError(display.ErrSize))
		Expect(m.Surface).To(BeNil())
	})
})
