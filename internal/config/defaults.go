package config

// DesktopSphere and MobileSphere are the stock presets of the hero sphere.
var (
	DesktopSphere = Sphere{
		Dots:           400,
		GridDots:       91, // 13x7
		GridCols:       13,
		GridRows:       7,
		Radius:         200,
		AnimationSpeed: 0.99,
		RotationSpeed:  0.3,
		Color:          "#cbcaca",
		PaddingXVW:     1,
		PaddingYVW:     3,
		MaxScale:       1.5,
		Smoothing:      0.1,
		PointSizeVW:    0.6,
		Threshold:      0.3,
		ScatterDepth:   1000,
		Easing:         "in-out-cubic",
	}

	MobileSphere = Sphere{
		Dots:           200,
		GridDots:       45,
		GridCols:       5,
		GridRows:       9,
		Radius:         150,
		AnimationSpeed: 0.99,
		RotationSpeed:  0.3,
		Color:          "#a7a7a7",
		PaddingXVW:     5,
		PaddingYVW:     20,
		MaxScale:       1.3,
		Smoothing:      0.1,
		PointSizeVW:    2,
		Threshold:      0.3,
		ScatterDepth:   1000,
		Easing:         "in-out-cubic",
	}
)

// Default is the built-in page: the sphere on its own tab and five wave
// strips on a second one.
func Default() *File {
	yes, no := true, false
	return &File{
		Window: Window{
			Width:            WindowWidth,
			Height:           WindowHeight,
			Title:            WindowTitle,
			PageHeight:       PageHeight,
			MobileBreakpoint: MobileBreakpoint,
			Device:           "auto",
			TPS:              TicksPerSecond,
		},
		Containers: []Container{
			{ID: "webflow-sphere-container", X: 0, Y: 0, W: 1, H: 1},
			{ID: "wave-height-container", X: 0.02, Y: 0.03, W: 0.96, H: 0.14},
			{ID: "wave2-container", X: 0.02, Y: 0.21, W: 0.96, H: 0.14},
			{ID: "wave3-height-container", X: 0.02, Y: 0.39, W: 0.96, H: 0.14},
			{ID: "wave4-height-container", X: 0.02, Y: 0.57, W: 0.3, H: 0.4},
			{ID: "wave5-height-container", X: 0.36, Y: 0.62, W: 0.62, H: 0.18},
		},
		Tracks: []Track{
			{ID: "scroll-track", Container: "wave3-height-container", Content: 4000},
			{ID: "scroll-track2", Container: "wave4-height-container", Content: 3000, Vertical: true},
		},
		Spheres: []SphereInstance{{
			Name:      "sphere",
			Container: "webflow-sphere-container",
			Tab:       "sphere",
			Signal:    "scroll",
			FOV:       DefaultFOV,
			CameraZ:   DefaultCameraZ,
			Desktop:   DesktopSphere,
			Mobile:    MobileSphere,
		}},
		Waves: []WaveInstance{
			{
				Name:          "cases",
				Container:     "wave-height-container",
				Tab:           "waves",
				Direction:     "horizontal",
				DynamicColors: []string{"#44403F", "#ffffff"},
				Touch:         &WaveOverride{StepSwipe: &yes},
			},
			{
				Name:           "wave2",
				Container:      "wave2-container",
				Tab:            "waves",
				Direction:      "horizontal",
				BaseColor:      "#514B49",
				ActiveColor:    "#44403F",
				InfluenceRatio: 0.08,
				Swipe:          &no,
				Marker:         &Marker{Width: 120, Height: 18, Color: "#ff661a"},
			},
			{
				Name:           "wave3",
				Container:      "wave3-height-container",
				Tab:            "waves",
				Direction:      "horizontal",
				Lines:          55,
				LinesMobile:    30,
				ScrollTrack:    "scroll-track",
				BaseColor:      "#E5E5E5",
				ActiveColor:    "#ff661a",
				InfluenceRatio: 0.08,
				ActivePosition: 0.115,
			},
			{
				Name:             "wave4",
				Container:        "wave4-height-container",
				Tab:              "waves",
				Direction:        "vertical",
				Lines:            65,
				LinesMobile:      40,
				ScrollTrack:      "scroll-track2",
				BaseColor:        "#D3D3D3",
				ActiveColor:      "#ff661a",
				BaseRatio:        0.1,
				WaveRatio:        0.35,
				LineThickness:    1,
				InfluenceRatio:   0.06,
				DesktopScrollBar: true,
				Touch: &WaveOverride{
					Direction:        "horizontal",
					Lines:            40,
					InfluenceRatio:   0.08,
					ActivePosition:   0.115,
					DesktopScrollBar: &no,
				},
			},
			{
				Name:           "wave5",
				Container:      "wave5-height-container",
				Tab:            "waves",
				Direction:      "horizontal",
				Lines:          130,
				BaseColor:      "#E5E5E5",
				ActiveColor:    "#ff661a",
				InfluenceRatio: 0.04,
				ActivePosition: 0.5,
				Swipe:          &no,
			},
		},
	}
}
