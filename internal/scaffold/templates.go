package scaffold

// File names written into the project directory.
const (
	PackageJSONName = "package.json"
	MainJSName      = "main.js"
	IndexHTMLName   = "index.html"
	RendererJSName  = "renderer.js"
)

// PackageJSON is the project manifest. `npm start` runs electron on the project root.
const PackageJSON = `{
  "name": "my-electron-app",
  "version": "1.0.0",
  "main": "main.js",
  "scripts": {
    "start": "electron ."
  },
  "devDependencies": {
    "electron": "^24.0.0"
  }
}
`

// MainJS opens an 800x600 window on the app "ready" event and loads index.html.
const MainJS = `const { app, BrowserWindow } = require('electron');
const path = require('path');

let mainWindow;

app.on('ready', () => {
  mainWindow = new BrowserWindow({
    width: 800,
    height: 600,
    webPreferences: {
      preload: path.join(__dirname, 'renderer.js'),
    }
  });

  mainWindow.loadFile('index.html');
});
`

const IndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>My Electron App</title>
  <style>
    body {
      margin: 0;
      font-family: Arial, sans-serif;
    }
  </style>
</head>
<body>
  <h1>Hello, this is my Electron app!</h1>
</body>
</html>
`

// RendererJS is the empty preload script referenced from MainJS.
const RendererJS = `// You can add additional JS logic here if needed.
`
