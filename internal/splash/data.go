package splash

// TitleArt is the splash screen's centered title block.
const TitleArt = `
 _____ _____ _____ ____  _____ _____
|_   _|  ___|_   _|  _ \|_   _/ ____|
  | | | |__   | | | |_) | | || (___
  | | |  __|  | | |  _ <  | | \___ \
  | | | |___  | | | |_) |_| |_____) |
  |_| |_____| |_| |____/|_____|____/
`

// Credits is the attribution line shown under the title.
const Credits = "a terminal tetris engine"

// Prompt is the blinking call-to-action line.
const Prompt = "press any key to start"
