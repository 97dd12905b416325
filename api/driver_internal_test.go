package api

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockDevice *MockDevice
		tiles      []*MockTile
		driver     *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		mockDevice = NewMockDevice(mockCtrl)
		tiles = []*MockTile{NewMockTile(mockCtrl), NewMockTile(mockCtrl)}

		mockDevice.EXPECT().NumTiles().Return(2).AnyTimes()
		for i, tile := range tiles {
			mockDevice.EXPECT().GetTile(i).Return(tile).AnyTimes()
		}

		driver = &driverImpl{engine: sim.NewSerialEngine()}
		driver.RegisterDevice(mockDevice)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should refuse devices that are not pairs", func() {
		single := NewMockDevice(mockCtrl)
		single.EXPECT().NumTiles().Return(1).AnyTimes()

		Expect(func() { driver.RegisterDevice(single) }).To(Panic())
	})

	It("should map the program with tile identities", func() {
		prog := program.Program{}
		tiles[0].EXPECT().MapProgram(prog, int64(0))
		tiles[1].EXPECT().MapProgram(prog, int64(1))

		driver.MapProgram(prog)

		Expect(driver.mapped).To(BeTrue())
	})

	It("should not run without a program", func() {
		_, err := driver.Run()

		Expect(err).To(MatchError(ErrNoProgram))
	})

	Context("when running", func() {
		BeforeEach(func() {
			driver.mapped = true
			for _, tile := range tiles {
				tile.EXPECT().Kick()
			}
		})

		It("should report two terminated tiles", func() {
			tiles[0].EXPECT().Stats().Return(link.TileStats{State: link.Terminated, Sent: 2, Received: 1})
			tiles[1].EXPECT().Stats().Return(link.TileStats{State: link.Terminated, Sent: 1, Received: 2})

			res, err := driver.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Deadlocked).To(BeFalse())
			Expect(res.Sent).To(Equal([2]int{2, 1}))
			Expect(res.Received).To(Equal([2]int{1, 2}))
		})

		It("should report a deadlock", func() {
			tiles[0].EXPECT().Stats().Return(link.TileStats{State: link.Blocked, Sent: 3, Received: 3})
			tiles[0].EXPECT().HasPendingInput().Return(false)
			tiles[1].EXPECT().Stats().Return(link.TileStats{State: link.Terminated, Sent: 3, Received: 2})

			res, err := driver.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Deadlocked).To(BeTrue())
			Expect(res.Answer()).To(Equal(3))
			Expect(res.States).To(Equal([2]link.State{link.Blocked, link.Terminated}))
		})

		It("should return faults", func() {
			tiles[0].EXPECT().Stats().Return(link.TileStats{State: link.Faulted, Err: core.ErrModByZero})

			_, err := driver.Run()

			Expect(err).To(MatchError(core.ErrModByZero))
			Expect(err).To(MatchError("machine 0: mod by zero"))
		})

		It("should detect a stalled simulation", func() {
			tiles[0].EXPECT().Stats().Return(link.TileStats{State: link.Blocked})
			tiles[0].EXPECT().HasPendingInput().Return(true)
			tiles[1].EXPECT().Stats().Return(link.TileStats{State: link.Running})

			_, err := driver.Run()

			Expect(err).To(MatchError(ErrStalled))
		})
	})
})
